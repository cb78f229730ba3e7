// Package query implements the read path over the prompt collection:
// filtering, searching and ordering. Every function here is pure; none of
// them mutates its input or fails.
package query

import (
	"slices"
	"strconv"
	"strings"

	"github.com/pkordes/promptlib/backend/internal/domain"
)

// allSentinel disables the category and type filters.
const allSentinel = "all"

// NormalizeParams turns raw client-supplied filter values into QueryParams.
// Malformed values are treated as "no filter" rather than rejected:
// a non-numeric or non-positive category becomes 0, an unknown type becomes
// empty, and an unknown sort becomes SortNone.
func NormalizeParams(search, categoryID, promptType, sort string) domain.QueryParams {
	p := domain.QueryParams{Search: strings.TrimSpace(search)}

	if c := strings.TrimSpace(categoryID); c != "" && c != allSentinel {
		if id, err := strconv.ParseInt(c, 10, 64); err == nil && id > 0 {
			p.CategoryID = id
		}
	}

	if t := domain.PromptType(strings.TrimSpace(promptType)); t.Valid() {
		p.Type = t
	}

	switch s := domain.Sort(strings.TrimSpace(sort)); s {
	case domain.SortNewest, domain.SortPopular, domain.SortViews:
		p.Sort = s
	}

	return p
}

// Apply returns the published prompts in collection that satisfy every
// filter in params, ordered by params.Sort. Ties keep collection order.
// The returned slice is freshly allocated and never nil.
func Apply(collection []domain.Prompt, params domain.QueryParams) []domain.Prompt {
	search := strings.ToLower(params.Search)

	out := make([]domain.Prompt, 0, len(collection))
	for _, p := range collection {
		if !p.IsPublished {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if params.CategoryID != 0 && p.CategoryID != params.CategoryID {
			continue
		}
		if params.Type != "" && p.Type != params.Type {
			continue
		}
		out = append(out, p)
	}

	switch params.Sort {
	case domain.SortNewest:
		slices.SortStableFunc(out, func(a, b domain.Prompt) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case domain.SortPopular:
		slices.SortStableFunc(out, func(a, b domain.Prompt) int {
			switch {
			case a.ViewCount > b.ViewCount:
				return -1
			case a.ViewCount < b.ViewCount:
				return 1
			}
			return 0
		})
	}

	return out
}

// matchesSearch reports whether the lowercased query q is a substring of
// p's title, description or any tag.
func matchesSearch(p domain.Prompt, q string) bool {
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		p.HasTag(q)
}

// Tags returns every distinct tag of the published prompts in collection
// with the number of prompts carrying it, ordered by name.
// Tags are case-sensitive: "React" and "react" are counted separately.
func Tags(collection []domain.Prompt) []domain.TagCount {
	counts := map[string]int{}
	for _, p := range collection {
		if !p.IsPublished {
			continue
		}
		for _, t := range p.Tags {
			counts[t]++
		}
	}

	out := make([]domain.TagCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, domain.TagCount{Name: name, Count: n})
	}
	slices.SortFunc(out, func(a, b domain.TagCount) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// MaxSuggestions caps the result of SuggestTags.
const MaxSuggestions = 3

// SuggestTags returns up to MaxSuggestions of the known tags that relate to
// q: the tag contains q, or q contains the tag, ignoring case. Tags keep the
// order of known. An empty q suggests nothing.
func SuggestTags(q string, known []string) []string {
	out := []string{}
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return out
	}
	for _, t := range known {
		lt := strings.ToLower(t)
		if strings.Contains(lt, q) || strings.Contains(q, lt) {
			out = append(out, t)
			if len(out) == MaxSuggestions {
				break
			}
		}
	}
	return out
}

// Summarize computes dashboard totals over the whole collection,
// drafts included.
func Summarize(collection []domain.Prompt) domain.Stats {
	var s domain.Stats
	for _, p := range collection {
		s.TotalPrompts++
		if p.IsPublished {
			s.PublishedPrompts++
		}
		if p.IsFeatured {
			s.FeaturedPrompts++
		}
		s.TotalViews += p.ViewCount
		s.TotalCopies += p.CopyCount
	}
	return s
}
