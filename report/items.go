package report

import "strings"

// SplitItems turns a one-item-per-line text block into bullet items. Blank
// lines are skipped, and any numbering the user typed ("1) ", "2. ") is
// removed since renderers number items themselves.
func SplitItems(block string) []string {
	var items []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		line = strings.Trim(line, " \t")
		line = strings.TrimLeft(line, "0123456789). ")
		items = append(items, strings.TrimSpace(line))
	}
	return items
}

