// Package memo fills engineering-memorandum text templates. Templates
// mark fields with [placeholder] blocks; values come from a flat map,
// typically the governance result plus site metadata.
package memo

import (
	"regexp"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\[([^\]]+)\]`)

// Placeholders returns the unique [placeholder] tokens in order of first
// appearance, brackets included.
func Placeholders(template string) []string {
	seen := map[string]bool{}
	var order []string
	for _, m := range placeholderRe.FindAllString(template, -1) {
		if !seen[m] {
			seen[m] = true
			order = append(order, m)
		}
	}
	return order
}

// Fill replaces each [placeholder] with its value. Keys may be given with
// or without brackets. Placeholders without a value are left as-is so a
// half-filled memo is visibly half-filled.
func Fill(template string, values map[string]string) string {
	byBracket := make(map[string]string, len(values))
	for k, v := range values {
		byBracket["["+normalizeKey(k)+"]"] = strings.TrimSpace(v)
	}
	return placeholderRe.ReplaceAllStringFunc(template, func(m string) string {
		if v, ok := byBracket[m]; ok {
			return v
		}
		return m
	})
}

// StripComments removes // comment lines so JSON-with-comments value
// files parse as plain JSON.
func StripComments(text string) string {
	lines := strings.Split(text, "\n")
	out := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func normalizeKey(key string) string {
	k := strings.TrimSpace(key)
	if strings.HasPrefix(k, "[") && strings.HasSuffix(k, "]") {
		k = strings.TrimSpace(k[1 : len(k)-1])
	}
	return k
}
