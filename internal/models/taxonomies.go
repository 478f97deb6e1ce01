package models

import (
	"encoding/json"
	"time"
)

type Category struct {
	ID          ID         `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description,omitempty"`
	Color       string     `json:"color,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type Categories []Category

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (cats Categories) MarshalBinary() (data []byte, err error) {
	return json.Marshal(cats)
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (cats *Categories) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, cats)
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (c Category) MarshalBinary() (data []byte, err error) {
	return json.Marshal(c)
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (c *Category) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, c)
}

type CategoryWithPostCount struct {
	Category
	PostCount int `json:"postCount"`
}

type CategoriesWithPostCount []CategoryWithPostCount

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (cats CategoriesWithPostCount) MarshalBinary() (data []byte, err error) {
	return json.Marshal(cats)
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (cats *CategoriesWithPostCount) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, cats)
}

// Count finds the post count of the category with the given id
func (cats CategoriesWithPostCount) Count(id ID) (int, bool) {
	for _, c := range cats {
		if c.ID == id {
			return c.PostCount, true
		}
	}
	return 0, false
}
