package plate

import "strings"

// Normalize приводит номерной знак к каноническому виду:
// верхний регистр, без пробелов и дефисов.
func Normalize(raw string) string {
	normalized := strings.ToUpper(raw)
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, "-", "")
	return normalized
}
