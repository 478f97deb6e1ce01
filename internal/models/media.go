package models

type Media struct {
	ID       ID     `json:"id"`
	Alt      string `json:"alt"`
	Caption  string `json:"caption,omitempty"`
	URL      string `json:"url"`
	Filename string `json:"filename,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}
