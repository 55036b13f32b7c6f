package domain

import "sort"

// AllowedCitations is the process-wide set of approved citation tokens,
// e.g. "[SR11-7]". It is built once from the source registry and is
// read-only afterwards, so concurrent reads need no locking. Scorers
// receive it as an explicit dependency rather than reaching for a global.
type AllowedCitations struct {
	tokens map[string]struct{}
}

// NewAllowedCitations builds an immutable allowlist from the given tokens.
// Duplicates collapse; an empty or nil slice yields an empty set, under
// which every cited token is rejected.
func NewAllowedCitations(tokens []string) AllowedCitations {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return AllowedCitations{tokens: set}
}

// Contains reports whether the token is in the allowed set.
func (a AllowedCitations) Contains(token string) bool {
	_, ok := a.tokens[token]
	return ok
}

// Len returns the number of allowed tokens.
func (a AllowedCitations) Len() int { return len(a.tokens) }

// Tokens returns the allowed tokens in sorted order, matching the
// ordering the source registry loader promises for prompt construction.
func (a AllowedCitations) Tokens() []string {
	out := make([]string, 0, len(a.tokens))
	for t := range a.tokens {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
