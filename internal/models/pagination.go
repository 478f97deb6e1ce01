package models

import "strconv"

type PaginationInfo struct {
	CurrentPage  int
	TotalPages   int
	TotalRecords int
	PageSize     int
	Pages        []PageInfo
	// Path of the first page, e.g. /blog/
	BasePath string
}

type PageInfo struct {
	Number     int
	IsCurrent  bool
	IsEllipsis bool
}

// HasPrevious reports whether there is a page before the current one
func (p *PaginationInfo) HasPrevious() bool {
	return p.CurrentPage > 1
}

// HasNext reports whether there is a page after the current one
func (p *PaginationInfo) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}

func (p *PaginationInfo) PreviousPage() int {
	return max(p.CurrentPage-1, 1)
}

func (p *PaginationInfo) NextPage() int {
	return min(p.CurrentPage+1, p.TotalPages)
}

// URL is the path of the given page number.
// Pages are plain paths so the exported site needs no query strings.
func (p *PaginationInfo) URL(number int) string {
	if number <= 1 {
		return p.BasePath
	}
	return p.BasePath + "page/" + strconv.Itoa(number) + "/"
}
