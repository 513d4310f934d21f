package ui

import "strings"

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// truncateMiddle shortens a path by removing characters from the middle,
// keeping the leading directories and the file name with its extension.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}

	ellipsis := []rune("…/")
	if limit <= len(ellipsis)+1 {
		return string(runes[:limit])
	}

	// Prefer keeping the whole file name when it fits in half the space.
	if slash := strings.LastIndexAny(value, `/\`); slash >= 0 {
		base := []rune(value[slash+1:])
		if len(base) > 0 && len(base) < limit/2 {
			head := limit - len(base) - len(ellipsis)
			return string(runes[:head]) + string(ellipsis) + string(base)
		}
	}

	keep := limit - len(ellipsis)
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + string(ellipsis) + string(runes[len(runes)-suffix:])
}

// maxInt returns the larger of two integers.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
