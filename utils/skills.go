package utils

import "strings"

// NormalizeSkills accepts either an already split list or a single
// comma-delimited string. A single value is split on commas and trimmed,
// dropping empty entries; a multi-value list is returned unchanged.
func NormalizeSkills(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}
	if len(raw) > 1 {
		return raw
	}

	parts := strings.Split(raw[0], ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
