package tree

import "strings"

// PathEntry identifies one ancestor box on the way from a root to a match.
type PathEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BoxMatch is a box that matched a search, with the chain of its ancestors
// (not including the box itself) in root-to-leaf order.
type BoxMatch struct {
	Box  *Box
	Path []PathEntry
}

// ItemMatch is an item that matched a search, with the full ancestor chain
// down to and including the item's direct box.
type ItemMatch struct {
	Item *Item
	Path []PathEntry
}

// SearchResult holds matches in forest traversal order.
type SearchResult struct {
	Boxes []BoxMatch
	Items []ItemMatch
}

// Stats summarizes the forest.
type Stats struct {
	TotalBoxes int `json:"totalBoxes"`
	TotalItems int `json:"totalItems"`
	RootBoxes  int `json:"rootBoxes"`
}

// Search finds every box and item whose name or description contains query,
// case-insensitively. Matching zero entities yields empty result lists, not
// an error.
func (t *Tracker) Search(query string) SearchResult {
	q := strings.ToLower(query)
	var res SearchResult
	var path []PathEntry

	var walk func(b *Box)
	walk = func(b *Box) {
		if matches(q, b.Name, b.Description) {
			res.Boxes = append(res.Boxes, BoxMatch{Box: b, Path: clonePath(path)})
		}

		path = append(path, PathEntry{ID: b.ID, Name: b.Name})
		for _, it := range t.ChildItems(b) {
			if matches(q, it.Name, it.Description) {
				res.Items = append(res.Items, ItemMatch{Item: it, Path: clonePath(path)})
			}
		}
		for _, c := range t.ChildBoxes(b) {
			walk(c)
		}
		path = path[:len(path)-1]
	}

	for _, root := range t.Roots() {
		walk(root)
	}
	return res
}

// Stats walks the whole forest and counts boxes and items. Always recomputed,
// never cached.
func (t *Tracker) Stats() Stats {
	s := Stats{RootBoxes: len(t.roots)}
	var walk func(b *Box)
	walk = func(b *Box) {
		s.TotalBoxes++
		s.TotalItems += len(b.ItemIDs)
		for _, c := range t.ChildBoxes(b) {
			walk(c)
		}
	}
	for _, root := range t.Roots() {
		walk(root)
	}
	return s
}

func matches(query, name, description string) bool {
	if query == "" {
		return false
	}
	return strings.Contains(strings.ToLower(name), query) ||
		strings.Contains(strings.ToLower(description), query)
}

func clonePath(path []PathEntry) []PathEntry {
	if len(path) == 0 {
		return []PathEntry{}
	}
	out := make([]PathEntry, len(path))
	copy(out, path)
	return out
}
