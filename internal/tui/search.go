package tui

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/tableside/internal/pos"
)

// visibleMenu returns the catalog filtered by the current search term.
func (a *App) visibleMenu() []pos.CartItem {
	term := strings.TrimSpace(a.searchTerm)
	if term == "" {
		return a.menu
	}
	var out []pos.CartItem
	for _, it := range a.menu {
		if matchesQuery(it.Name, term) || matchesQuery(it.Category, term) {
			out = append(out, it)
		}
	}
	return out
}

// matchesQuery accepts substring hits and near-misses: a query within
// edit distance 40% of a word still matches, so "pitza" finds pizza.
func matchesQuery(name, query string) bool {
	name = strings.ToUpper(name)
	query = strings.ToUpper(query)
	if strings.Contains(name, query) {
		return true
	}
	for _, word := range strings.Fields(name) {
		dist := levenshtein.ComputeDistance(word, query)
		maxlen := float64(len(word))
		if len(query) > len(word) {
			maxlen = float64(len(query))
		}
		if float64(dist)/maxlen < 0.4 {
			return true
		}
	}
	return false
}
