package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is a document id. The CMS sends strings or numbers
// depending on the database adapter, both decode to a string.
type ID string

// UnmarshalJSON implements the json.Unmarshaler interface
func (id *ID) UnmarshalJSON(data []byte) error {

	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}

	*id = ID(n.String())
	return nil
}

// Ref is a relationship or upload field.
// Depending on the request depth the CMS sends either
// the embedded document or just its id.
type Ref[T any] struct {
	ID  ID
	Doc *T
}

type (
	MediaRef    = Ref[Media]
	CategoryRef = Ref[Category]
	PostRef     = Ref[Post]
	PageRef     = Ref[Page]
)

// Resolved reports whether the document is embedded
func (r Ref[T]) Resolved() bool {
	return r.Doc != nil
}

// Empty reports whether the field was set at all
func (r Ref[T]) Empty() bool {
	return r.Doc == nil && r.ID == ""
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (r *Ref[T]) UnmarshalJSON(data []byte) error {

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	// Bare id
	if data[0] != '{' {
		return r.ID.UnmarshalJSON(data)
	}

	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	var head struct {
		ID ID `json:"id"`
	}

	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	r.ID = head.ID
	r.Doc = &doc
	return nil
}

// MarshalJSON implements the json.Marshaler interface
func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.Doc != nil {
		return json.Marshal(r.Doc)
	}
	if r.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(r.ID))
}
