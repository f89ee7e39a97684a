package views

import (
	"sort"
	"strings"

	"github.com/qcutapp/dashboard-v2/models"
)

// Filter is the transient list filter: selected category buttons and a
// free-text search. The two are mutually exclusive: selecting a
// category clears the search and typing a search clears the categories.
type Filter struct {
	Categories []string
	Search     string
}

func (f Filter) Active() bool {
	return len(f.Categories) > 0 || f.Search != ""
}

func (f Filter) HasCategory(cat string) bool {
	for _, c := range f.Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// matches implements the inclusion rule: with no filter set everything
// passes; otherwise an item passes when its category is selected OR its
// name contains the search term case-insensitively.
func (f Filter) matches(category, name string) bool {
	if !f.Active() {
		return true
	}
	if len(f.Categories) > 0 && f.HasCategory(category) {
		return true
	}
	if f.Search != "" &&
		strings.Contains(strings.ToLower(name), strings.ToLower(f.Search)) {
		return true
	}
	return false
}

// FilterDrinks applies the filter to a drink list, dropping soft-deleted
// entries, and sorts most recently modified first. Ties are left in
// input order.
func FilterDrinks(drinks []models.Drink, f Filter) []models.Drink {
	out := make([]models.Drink, 0, len(drinks))
	for _, d := range drinks {
		if d.Deleted {
			continue
		}
		if f.matches(d.Category, d.Name) {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

// FilterSpecials is the same pipeline for specials, which carry no
// category (search-only filtering in practice).
func FilterSpecials(specials []models.Special, f Filter) []models.Special {
	out := make([]models.Special, 0, len(specials))
	for _, sp := range specials {
		if f.matches("", sp.Name) {
			out = append(out, sp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}
