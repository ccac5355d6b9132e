// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package menu

/*
BuildTree assembles a flat, position-ordered slice of items into a forest.

Description: The assembly is a single O(n) pass over an adjacency map.
Input order is preserved at every level, so feeding items sorted by
position yields position-sorted siblings without re-sorting.

Rules:
  - An item with a nil ParentID is a root.
  - An item whose parent is not present in the input is promoted to a root
    rather than silently dropped.
  - A parent reference that would close a cycle is treated as missing, so
    corrupt data degrades to extra roots instead of infinite recursion.

Parameters:
  - items: Flat slice ordered by position.

Returns:
  - []*MenuItem: Root items with Children populated (never nil).
*/
func BuildTree(items []*MenuItem) []*MenuItem {
	byID := make(map[int64]*MenuItem, len(items))
	for _, item := range items {
		item.Children = make([]*MenuItem, 0)
		byID[item.ID] = item
	}

	roots := make([]*MenuItem, 0)
	for _, item := range items {
		if item.ParentID == nil {
			roots = append(roots, item)
			continue
		}

		parent, ok := byID[*item.ParentID]
		if !ok || parent.ID == item.ID || closesCycle(byID, item) {
			roots = append(roots, item)
			continue
		}

		parent.Children = append(parent.Children, item)
	}

	return roots
}

// closesCycle walks the parent chain from item and reports whether it loops
// back to item. The walk is bounded by the map size.
func closesCycle(byID map[int64]*MenuItem, item *MenuItem) bool {
	seen := 0
	current := item
	for current.ParentID != nil {
		parent, ok := byID[*current.ParentID]
		if !ok {
			return false
		}
		if parent.ID == item.ID {
			return true
		}
		seen++
		if seen > len(byID) {
			return true
		}
		current = parent
	}
	return false
}

// CountNodes returns the total number of items in the forest.
func CountNodes(roots []*MenuItem) int {
	total := 0
	for _, root := range roots {
		total += 1 + CountNodes(root.Children)
	}
	return total
}
