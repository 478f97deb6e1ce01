package models

import "encoding/json"

// Response is the pagination envelope of every collection read
type Response[T any] struct {
	Docs          []T  `json:"docs"`
	TotalDocs     int  `json:"totalDocs"`
	Limit         int  `json:"limit"`
	TotalPages    int  `json:"totalPages"`
	Page          int  `json:"page"`
	PagingCounter int  `json:"pagingCounter"`
	HasPrevPage   bool `json:"hasPrevPage"`
	HasNextPage   bool `json:"hasNextPage"`
	PrevPage      *int `json:"prevPage"`
	NextPage      *int `json:"nextPage"`
}

// First returns the first document or nil
func (r *Response[T]) First() *T {
	if r == nil || len(r.Docs) == 0 {
		return nil
	}
	return &r.Docs[0]
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (r Response[T]) MarshalBinary() (data []byte, err error) {
	return json.Marshal(r)
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (r *Response[T]) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, r)
}
