package models

import (
	"encoding/json"
	"time"
)

type Meta struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Image       MediaRef `json:"image"`
}

type Page struct {
	ID        ID         `json:"id"`
	Title     string     `json:"title"`
	Slug      string     `json:"slug"`
	Blocks    Blocks     `json:"blocks"`
	Meta      *Meta      `json:"meta,omitempty"`
	Status    string     `json:"status"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (p Page) MarshalBinary() (data []byte, err error) {
	return json.Marshal(p)
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (p *Page) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, p)
}

// Path is the public URL path of the page
func (p *Page) Path() string {
	if p.Slug == "home" {
		return "/"
	}
	return "/" + p.Slug + "/"
}

// SEOTitle is the meta title override or the page title
func (p *Page) SEOTitle() string {
	if p.Meta != nil && p.Meta.Title != "" {
		return p.Meta.Title
	}
	return p.Title
}

type Pages []Page

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (p Pages) MarshalBinary() (data []byte, err error) {
	return json.Marshal(p)
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (p *Pages) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, p)
}
