package repository

import "strings"

// tagSeparator delimits multi-valued text columns (mentor skills,
// submission keywords). Commas inside a tag are not supported; intake
// validation strips them.
const tagSeparator = ","

// joinTags flattens a tag slice into the storage representation, trimming
// whitespace and dropping empty entries.
func joinTags(tags []string) string {
	clean := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			clean = append(clean, t)
		}
	}
	return strings.Join(clean, tagSeparator)
}

// splitTags expands a stored column back into a slice. An empty column
// yields a nil slice, never a one-element slice holding "".
func splitTags(col string) []string {
	if strings.TrimSpace(col) == "" {
		return nil
	}
	parts := strings.Split(col, tagSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
