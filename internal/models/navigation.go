package models

import "encoding/json"

const (
	LinkInternal = "internal"
	LinkCustom   = "custom"
)

// RawNavItem is a navigation entry as stored in the CMS
type RawNavItem struct {
	Type   string  `json:"type"`
	Page   PageRef `json:"page"`
	URL    string  `json:"url,omitempty"`
	Label  string  `json:"label,omitempty"`
	NewTab bool    `json:"newTab,omitempty"`
}

type RawNavGroup struct {
	Items []RawNavItem `json:"items"`
}

// RawNavigation is the navigation global as returned by the CMS
type RawNavigation struct {
	Header RawNavGroup `json:"header"`
	Footer RawNavGroup `json:"footer"`
}

type NavItem struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	NewTab bool   `json:"newTab,omitempty"`
}

type NavGroup struct {
	Items []NavItem `json:"items"`
}

type Navigation struct {
	Header NavGroup `json:"header"`
	Footer NavGroup `json:"footer"`
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (n Navigation) MarshalBinary() (data []byte, err error) {
	return json.Marshal(n)
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (n *Navigation) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, n)
}
