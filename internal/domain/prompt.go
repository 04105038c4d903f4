package domain

import (
	"sort"
	"strings"
	"time"
)

type PromptID string

// Prompt is a single library entry. The ID is assigned by the remote store at
// creation time and is the reconciliation key; CreatedAt is stamped by the
// creating client and never changes afterward.
type Prompt struct {
	ID        PromptID
	Text      string
	CreatedAt time.Time
}

// SortByCreatedAtDesc orders prompts newest first. A prompt whose CreatedAt has
// not round-tripped from the store yet (zero value) is treated as the most
// recent and sorts before everything else.
func SortByCreatedAtDesc(prompts []Prompt) {
	sort.SliceStable(prompts, func(i, j int) bool {
		a, b := prompts[i], prompts[j]
		if a.CreatedAt.IsZero() != b.CreatedAt.IsZero() {
			return a.CreatedAt.IsZero()
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}

// BlankText reports whether text is empty or whitespace-only. Blank text is
// rejected before any write request is issued.
func BlankText(text string) bool {
	return strings.TrimSpace(text) == ""
}
