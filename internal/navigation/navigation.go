// Package navigation turns the raw navigation global into menu links
package navigation

import "github.com/vlatan/block-site/internal/models"

// Normalize converts both menus, dropping the entries that can't be linked.
// The relative order of the remaining entries is preserved.
func Normalize(raw models.RawNavigation) *models.Navigation {
	return &models.Navigation{
		Header: models.NavGroup{Items: normalizeItems(raw.Header.Items)},
		Footer: models.NavGroup{Items: normalizeItems(raw.Footer.Items)},
	}
}

// NormalizeItem converts a single entry.
// Returns false if the entry points nowhere.
func NormalizeItem(item models.RawNavItem) (models.NavItem, bool) {

	var href, label string

	if item.Type == models.LinkInternal {
		// An id alone can't produce a link
		if !item.Page.Resolved() {
			return models.NavItem{}, false
		}

		page := item.Page.Doc
		href = "/" + page.Slug
		if page.Slug == "home" {
			href = "/"
		}

		label = item.Label
		if label == "" {
			label = page.Title
		}
	} else {
		if item.URL == "" {
			return models.NavItem{}, false
		}

		href = item.URL
		label = item.Label
		if label == "" {
			label = item.URL
		}
	}

	return models.NavItem{
		Label:  label,
		Href:   href,
		NewTab: item.NewTab,
	}, true
}

func normalizeItems(items []models.RawNavItem) []models.NavItem {
	result := make([]models.NavItem, 0, len(items))
	for _, item := range items {
		if ni, ok := NormalizeItem(item); ok {
			result = append(result, ni)
		}
	}
	return result
}
