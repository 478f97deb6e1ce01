package models

import (
	"encoding/json"
	"time"
)

type Post struct {
	ID          ID              `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	HeroImage   MediaRef        `json:"heroImage"`
	Category    CategoryRef     `json:"category"`
	Author      string          `json:"author"`
	PubDate     *time.Time      `json:"pubDate,omitempty"`
	UpdatedDate *time.Time      `json:"updatedDate,omitempty"`
	Content     json.RawMessage `json:"content,omitempty"`
	Status      string          `json:"status"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (p Post) MarshalBinary() (data []byte, err error) {
	return json.Marshal(p)
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (p *Post) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, p)
}

// LastModified is the most recent of the edit dates
func (p *Post) LastModified() *time.Time {
	for _, t := range []*time.Time{p.UpdatedAt, p.UpdatedDate, p.PubDate} {
		if t != nil && !t.IsZero() {
			return t
		}
	}
	return nil
}

type Posts []Post

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (p Posts) MarshalBinary() (data []byte, err error) {
	return json.Marshal(p)
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (p *Posts) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, p)
}
