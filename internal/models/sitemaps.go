package models

type SitemapItem struct {
	Location     string
	LastModified string
}
