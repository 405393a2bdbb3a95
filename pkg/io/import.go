package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	errs "github.com/matzehuels/elbow/pkg/errors"
)

// ReadJSON decodes a batch document from r.
//
// Unknown fields are rejected so that typos such as "facing" instead of
// "facingDirection" do not silently drop constraints. The overshoot alias is
// folded into clearance on every connector and on the defaults.
//
// ReadJSON returns an error if:
//   - The JSON is malformed or contains unknown fields (INVALID_FORMAT)
//   - A facing direction is not one of x+, x-, y+, y- (INVALID_DIRECTION)
//   - clearance and overshoot are both given with different values
//
// Anchor coordinates and clearances are not range-checked here; the router
// reports those per connector. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errs.Is(err, errs.ErrCodeInvalidDirection) {
			return nil, err
		}
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode batch")
	}
	if dec.More() {
		return nil, errs.New(errs.ErrCodeInvalidFormat, "decode batch: trailing data after document")
	}

	if err := doc.Defaults.Normalize(); err != nil {
		return nil, fmt.Errorf("defaults: %w", err)
	}
	for i := range doc.Connectors {
		if err := doc.Connectors[i].Normalize(); err != nil {
			return nil, fmt.Errorf("connector %d: %w", i, err)
		}
	}
	return &doc, nil
}

// ImportJSON reads a batch document from the file at path.
//
// A missing file yields FILE_NOT_FOUND; otherwise ImportJSON returns the
// same errors as [ReadJSON].
func ImportJSON(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
