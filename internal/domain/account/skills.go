package account

import "strings"

// ParseSkills turns the free-text comma-separated skills input from the
// signup form into the stored list: entries are trimmed, empty entries are
// dropped, order is preserved and duplicates are kept as typed.
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
