// Package handler implements the hhbook local JSON API.
//
// Every response uses the Response envelope. Domain errors are mapped to
// HTTP statuses by their code; see errorCodeToHTTPStatus.
package handler
