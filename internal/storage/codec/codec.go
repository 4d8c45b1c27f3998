// Package codec reads and writes the hhbook data file.
//
// A data file is a single UTF-8 JSON object. Documents are written as
// two-space indented JSON; raw text payloads (such as a CSV export
// produced by the UI) are written verbatim.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/yndnr/hhbook/internal/core/domain"
)

// FileMode is the permission used for files written by the codec.
const FileMode fs.FileMode = 0o644

const indent = "  "

// Payload is what Save writes: either a DocumentPayload or RawText.
type Payload interface {
	encode() ([]byte, error)
}

// DocumentPayload is a structured document, encoded as pretty JSON.
type DocumentPayload struct {
	Doc *domain.Document
}

func (p DocumentPayload) encode() ([]byte, error) {
	return Encode(p.Doc)
}

// RawText is written byte for byte without being parsed.
type RawText string

func (p RawText) encode() ([]byte, error) {
	return []byte(p), nil
}

// Encode serializes doc as indented JSON.
func Encode(doc *domain.Document) ([]byte, error) {
	if doc == nil {
		return nil, domain.ErrSerialize.WithDetails("document is nil")
	}
	data, err := json.MarshalIndent(doc, "", indent)
	if err != nil {
		return nil, domain.ErrSerialize.Wrap(err)
	}
	return data, nil
}

// Decode parses data as a document. Content that does not start with
// '{' fails with domain.ErrFormat; malformed JSON and schema violations
// fail with domain.ErrParse carrying the decoder message.
func Decode(data []byte) (*domain.Document, error) {
	if !bytes.HasPrefix(data, []byte("{")) {
		return nil, domain.ErrFormat
	}

	doc, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		var de *domain.DomainError
		if errors.As(err, &de) {
			return nil, domain.ErrParse.WithCause(err).WithDetails(de.Details)
		}
		return nil, domain.ErrParse.Wrap(err)
	}
	return doc, nil
}

// Unmarshal decodes a JSON document and checks that every required field
// is present and non-null. It does not run Document.Validate. Failures
// are domain.ErrParse.
func Unmarshal(data []byte) (*domain.Document, error) {
	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, domain.ErrParse.Wrap(err)
	}
	if err := checkRequired(data); err != nil {
		return nil, domain.ErrParse.Wrap(err)
	}
	return &doc, nil
}

// Load reads the document at path. A missing file is not an error: it
// yields domain.DefaultDocument so a new file can be started.
func Load(path string) (*domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultDocument(), nil
		}
		return nil, domain.ErrIO.Wrap(err)
	}
	return Decode(data)
}

// Save writes payload to path, replacing any existing file. The payload
// is encoded in full before the file is touched; the write itself is
// not atomic.
func Save(path string, payload Payload) error {
	if payload == nil {
		return domain.ErrSerialize.WithDetails("payload is nil")
	}
	data, err := payload.encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, FileMode); err != nil {
		return domain.ErrIO.Wrap(err)
	}
	return nil
}
