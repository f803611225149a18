package board

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/slateboard/slateboard/pkg/errors"
	"github.com/slateboard/slateboard/pkg/lane"
)

// MarshalDocument converts a document to indented JSON bytes.
func MarshalDocument(d *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeDocumentTo(d, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteDocumentFile writes a document to a JSON file.
// The file is created with 0644 permissions.
func WriteDocumentFile(d *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return writeDocumentTo(d, f)
}

// WriteDocument writes a document as JSON to an io.Writer.
func WriteDocument(d *Document, w io.Writer) error {
	return writeDocumentTo(d, w)
}

// ReadDocumentFile reads a JSON file and returns the decoded document.
// Returns validation errors for malformed documents.
func ReadDocumentFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadDocument(f)
}

// ReadDocument decodes a JSON document from an io.Reader and validates
// it. Use ReadDocumentFile for files or pass bytes.NewReader for
// in-memory data.
func ReadDocument(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode document")
	}
	if err := Validate(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

func writeDocumentTo(d *Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode document")
	}
	return nil
}

// Validate checks document-level invariants: well-formed unique shape
// ids, well-formed unique lane ids per axis, non-negative lane sizes,
// and connector targets that exist. Geometry fields are never
// validated; missing sizes fall through the size resolver instead.
func Validate(d *Document) error {
	seen := make(map[string]struct{}, len(d.Shapes))
	for _, s := range d.Shapes {
		if err := errors.ValidateID("shape", s.ID); err != nil {
			return err
		}
		if _, dup := seen[s.ID]; dup {
			return errors.New(errors.ErrCodeInvalidDocument, "duplicate shape id %q", s.ID)
		}
		seen[s.ID] = struct{}{}
	}

	for _, s := range d.Shapes {
		for _, target := range s.LinkedTo {
			if _, ok := seen[target]; !ok {
				return errors.New(errors.ErrCodeInvalidDocument,
					"shape %q links to unknown shape %q", s.ID, target)
			}
		}
	}

	if err := validateLanes(d.Lanes.Horizontal); err != nil {
		return err
	}
	return validateLanes(d.Lanes.Vertical)
}

func validateLanes(defs []lane.Definition) error {
	seen := make(map[string]struct{}, len(defs))
	for _, l := range defs {
		if err := errors.ValidateID("lane", l.ID); err != nil {
			return err
		}
		if _, dup := seen[l.ID]; dup {
			return errors.New(errors.ErrCodeInvalidLane, "duplicate lane id %q", l.ID)
		}
		seen[l.ID] = struct{}{}
		if l.Size < 0 {
			return errors.New(errors.ErrCodeInvalidLane, "lane %q has negative size %v", l.ID, l.Size)
		}
	}
	return nil
}
