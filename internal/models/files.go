package models

import (
	"html/template"
	"time"
)

type FileInfo struct {
	Bytes      []byte
	Compressed []byte
	MediaType  string
	ModTime    time.Time
	Etag       string
}

type StaticFiles map[string]*FileInfo
type TextFiles map[string]*FileInfo
type TemplateMap map[string]*template.Template
