package userform

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var openapiDocument []byte

const submissionSchemaName = "Submission"

var ErrSchemaNotFound = errors.New("submission schema not found in OpenAPI document")

// Schema checks the structure of JSON submissions against the embedded
// OpenAPI document before any field validation runs.
type Schema struct {
	doc        *openapi3.T
	submission *openapi3.Schema
}

// LoadSchema parses and validates the embedded OpenAPI document.
func LoadSchema(ctx context.Context) (*Schema, error) {
	loader := &openapi3.Loader{Context: ctx, IsExternalRefsAllowed: false}
	doc, err := loader.LoadFromData(openapiDocument)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}
	if doc.Components == nil {
		return nil, ErrSchemaNotFound
	}
	ref, ok := doc.Components.Schemas[submissionSchemaName]
	if !ok || ref == nil || ref.Value == nil {
		return nil, ErrSchemaNotFound
	}
	return &Schema{doc: doc, submission: ref.Value}, nil
}

// MustLoadSchema is LoadSchema for package initialization; it panics on error.
func MustLoadSchema() *Schema {
	s, err := LoadSchema(context.Background())
	if err != nil {
		panic(err)
	}
	return s
}

// Check reports ErrMalformedRecord when body is not a JSON object matching the
// Submission schema: missing required keys, unknown keys or wrong value types.
// Field contents are not judged here.
func (s *Schema) Check(body []byte) error {
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return malformed("invalid JSON: %v", err)
	}
	if err := s.submission.VisitJSON(value, openapi3.MultiErrors()); err != nil {
		return malformed("%v", err)
	}
	return nil
}

// Decode checks body against the schema and converts it into a Record.
func (s *Schema) Decode(body []byte) (Record, error) {
	if err := s.Check(body); err != nil {
		return Record{}, err
	}
	var p Payload
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, ErrMalformedRecord) {
			return Record{}, err
		}
		return Record{}, malformed("%v", err)
	}
	return p.Record()
}

// Document returns the raw OpenAPI document.
func (s *Schema) Document() []byte {
	return openapiDocument
}

// Version returns the document's info.version.
func (s *Schema) Version() string {
	if s.doc.Info == nil {
		return ""
	}
	return s.doc.Info.Version
}
