package query

import (
	"slices"
	"strings"
)

// Filter is a predicate over the document/catalog join.
// Variants: Nothing, All, BySites, ByKeyword, CollectedBetween, And.
type Filter interface {
	isFilter()
}

// Nothing matches no document. Compiling it is never needed: callers
// short-circuit before reaching the store.
type Nothing struct{}

// All matches every document visible through the catalog join.
type All struct{}

// BySites keeps documents whose site key is in Keys.
type BySites struct {
	Keys []string
}

// ByKeyword keeps documents whose title or summary contains Keyword.
type ByKeyword struct {
	Keyword string
}

// CollectedBetween keeps documents collected on a calendar date in
// [From, To], both YYYY-MM-DD. Equal bounds select a single day.
type CollectedBetween struct {
	From string
	To   string
}

type And struct {
	Left  Filter
	Right Filter
}

func (Nothing) isFilter()          {}
func (All) isFilter()              {}
func (BySites) isFilter()          {}
func (ByKeyword) isFilter()        {}
func (CollectedBetween) isFilter() {}
func (And) isFilter()              {}

// NewSearchFilter composes the search form inputs. Blank keys are dropped,
// the rest deduplicated and sorted; the keyword is trimmed. When both inputs
// end up empty the result is Nothing: an unconstrained browse is not offered.
func NewSearchFilter(siteKeys []string, keyword string) Filter {
	keys := normalizeKeys(siteKeys)
	keyword = strings.TrimSpace(keyword)

	switch {
	case len(keys) == 0 && keyword == "":
		return Nothing{}
	case len(keys) == 0:
		return ByKeyword{Keyword: keyword}
	case keyword == "":
		return BySites{Keys: keys}
	default:
		return And{Left: BySites{Keys: keys}, Right: ByKeyword{Keyword: keyword}}
	}
}

// IsNothing reports whether f can never match.
func IsNothing(f Filter) bool {
	switch v := f.(type) {
	case nil:
		return true
	case Nothing:
		return true
	case BySites:
		return len(v.Keys) == 0
	case And:
		return IsNothing(v.Left) || IsNothing(v.Right)
	default:
		return false
	}
}

func normalizeKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k != "" {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
