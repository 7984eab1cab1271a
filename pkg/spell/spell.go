// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package spell

import (
	"fmt"

	"github.com/sahilm/fuzzy"
)

// Suggest returns the best match for word among candidates. Matching is
// fuzzy in both directions, so "exist" matches "exists" and "existss"
// matches it too.
func Suggest(word string, candidates []string) (string, bool) {
	if len(word) == 0 || len(candidates) == 0 {
		return "", false
	}

	matches := fuzzy.Find(word, candidates)
	if len(matches) > 0 {
		return matches[0].Str, true
	}

	// candidates that are a subsequence of word (word has extra letters)
	var best string
	for _, candidate := range candidates {
		if len(candidate) > len(best) && len(fuzzy.Find(candidate, []string{word})) > 0 {
			best = candidate
		}
	}
	return best, len(best) > 0
}

// Hint formats a suggestion as " (did you mean 'x'?)", or an empty
// string when there is none.
func Hint(word string, candidates []string) string {
	if suggestion, ok := Suggest(word, candidates); ok {
		return fmt.Sprintf(" (did you mean '%s'?)", suggestion)
	}
	return ""
}
