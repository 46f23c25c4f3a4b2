package ruliweb

import (
	"slices"
	"strings"
)

// defaultExpiredKeywords mark a deal as gone: sold out, ended, closed, completed.
var defaultExpiredKeywords = []string{"품절", "종료", "마감", "완료"}

// DefaultExpiredKeywords returns a fresh copy of the built-in keyword list, in match order.
func DefaultExpiredKeywords() []string {
	return slices.Clone(defaultExpiredKeywords)
}

func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		out = append(out, k)
	}
	return out
}
