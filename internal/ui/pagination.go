package ui

import (
	"github.com/vlatan/block-site/internal/models"
)

// How many neighbours of the current page are listed on each side
const pageWindow = 1

// NewPagination describes the listing page the visitor is on.
// Out of range pages are clamped to the first or the last one.
func (s *service) NewPagination(currentPage, totalRecords, pageSize int, basePath string) *models.PaginationInfo {

	pageSize = max(pageSize, 1)
	totalPages := max((totalRecords+pageSize-1)/pageSize, 1)
	currentPage = min(max(currentPage, 1), totalPages)

	return &models.PaginationInfo{
		CurrentPage:  currentPage,
		TotalPages:   totalPages,
		TotalRecords: totalRecords,
		PageSize:     pageSize,
		Pages:        pageLinks(currentPage, totalPages),
		BasePath:     basePath,
	}
}

// pageLinks lists the first and the last page, the window around
// the current page, and an ellipsis wherever numbers are skipped
func pageLinks(current, total int) []models.PageInfo {
	if total <= 1 {
		return nil
	}

	numbers := []int{1}
	for n := max(current-pageWindow, 2); n <= min(current+pageWindow, total-1); n++ {
		numbers = append(numbers, n)
	}
	numbers = append(numbers, total)

	links := make([]models.PageInfo, 0, len(numbers)+2)
	for i, n := range numbers {
		if i > 0 && n-numbers[i-1] > 1 {
			links = append(links, models.PageInfo{IsEllipsis: true})
		}
		links = append(links, models.PageInfo{Number: n, IsCurrent: n == current})
	}

	return links
}
