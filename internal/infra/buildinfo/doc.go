// Package buildinfo exposes the build version of hhbook and the platform
// it runs on.
//
// Version, Commit and BuildTime are injected via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/hhbook/internal/infra/buildinfo.Version=1.2.0"
package buildinfo
