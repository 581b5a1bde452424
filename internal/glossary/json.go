// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package glossary

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// Canonical record field names. When the first record carries both, they
// are used regardless of their position.
const (
	canonicalTerm        = "term"
	canonicalDescription = "description"
)

// field is one key/value pair of a JSON object, in document order.
type field struct {
	name  string
	value json.RawMessage
}

// parseJSON accepts two shapes. An array of records is grouped by the
// value of each record's term field. A top-level object is taken as
// pre-aggregated: acronym to a definition or a list of definitions.
// When preAggregated is set, the array shape is rejected.
func parseJSON(data []byte, preAggregated bool) (*Glossary, error) {
	b := NewBuilder()
	if len(bytes.TrimSpace(data)) == 0 {
		return b.Build(), nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, malformed("invalid JSON: %v", err)
	}

	switch tok {
	case json.Delim('['):
		if preAggregated {
			return nil, malformed("pre-aggregated glossary must be a JSON object, got an array")
		}
		if err := readRecords(dec, b); err != nil {
			return nil, err
		}
	case json.Delim('{'):
		if err := readAggregated(dec, b); err != nil {
			return nil, err
		}
	default:
		return nil, malformed("expected a JSON array of records or an object, got %v", tok)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, malformed("unexpected data after top-level JSON value")
	}
	return b.Build(), nil
}

// readRecords consumes an array of objects whose opening bracket has
// already been read. The term and description field names come from the
// first record.
func readRecords(dec *json.Decoder, b *Builder) error {
	var termField, descField string
	for i := 0; dec.More(); i++ {
		fields, err := readObject(dec)
		if err != nil {
			return malformed("record %d: %v", i, err)
		}
		if i == 0 {
			termField, descField, err = recordFields(fields)
			if err != nil {
				return err
			}
		}

		term, ok := lookupField(fields, termField)
		if !ok {
			continue
		}
		desc, ok := lookupField(fields, descField)
		if !ok {
			continue
		}
		b.Add(term, desc)
	}
	if _, err := dec.Token(); err != nil {
		return malformed("unterminated array: %v", err)
	}
	return nil
}

// recordFields picks the term and description field names from the
// first record: the canonical names when both are present, otherwise the
// first two keys in document order.
func recordFields(fields []field) (string, string, error) {
	var term, desc string
	for _, f := range fields {
		switch strings.ToLower(f.name) {
		case canonicalTerm:
			if term == "" {
				term = f.name
			}
		case canonicalDescription:
			if desc == "" {
				desc = f.name
			}
		}
	}
	if term != "" && desc != "" {
		return term, desc, nil
	}
	if len(fields) < 2 {
		return "", "", malformed("first record has %d field(s), need a term and a description", len(fields))
	}
	return fields[0].name, fields[1].name, nil
}

// readAggregated consumes a flat object whose opening brace has already
// been read.
func readAggregated(dec *json.Decoder, b *Builder) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return malformed("invalid JSON: %v", err)
		}
		key, ok := tok.(string)
		if !ok {
			return malformed("expected an acronym key, got %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return malformed("acronym %q: %v", key, err)
		}
		defs, err := definitionList(raw)
		if err != nil {
			return malformed("acronym %q: %v", key, err)
		}
		for _, d := range defs {
			b.Add(key, d)
		}
	}
	if _, err := dec.Token(); err != nil {
		return malformed("unterminated object: %v", err)
	}
	return nil
}

// readObject reads one JSON object and returns its fields in order.
func readObject(dec *json.Decoder) ([]field, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok != json.Delim('{') {
		return nil, errors.New("record is not an object")
	}

	var fields []field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, errors.New("object key is not a string")
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		fields = append(fields, field{name: name, value: raw})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return fields, nil
}

// lookupField returns the scalar text of the named field. Missing and
// null fields report false.
func lookupField(fields []field, name string) (string, bool) {
	for _, f := range fields {
		if f.name == name {
			return scalarText(f.value)
		}
	}
	return "", false
}

// scalarText renders a JSON value as text: strings are unquoted, null is
// absent, anything else keeps its JSON spelling.
func scalarText(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	}
	return string(raw), true
}

// definitionList expands a pre-aggregated value into definitions.
func definitionList(raw json.RawMessage) ([]string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		defs := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := scalarText(item); ok {
				defs = append(defs, s)
			}
		}
		return defs, nil
	}
	if s, ok := scalarText(raw); ok {
		return []string{s}, nil
	}
	return nil, nil
}
