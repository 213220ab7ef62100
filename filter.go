package clack

import (
	"cmp"
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Matcher scores how well an item label matches a filter query.
// ok is false when the item should be hidden.
type Matcher interface {
	Score(label, query string) (score float64, ok bool)
}

// JaroWinklerMatcher is the default Matcher.
//
// The score is the Jaro-Winkler similarity of the lowercased label and query,
// compared character by character, plus 1 when every whitespace-separated word of the query occurs in the
// label. Items scoring at or below 0.6 are hidden, so typos are tolerated
// while unrelated labels disappear.
type JaroWinklerMatcher struct{}

// Jaro-Winkler parameters and the visibility threshold
const (
	jaroWinklerBoostThreshold = 0.7
	jaroWinklerPrefixSize     = 4
	jaroWinklerMinScore       = 0.6
)

func (JaroWinklerMatcher) Score(label, query string) (float64, bool) {
	label = strings.ToLower(label)
	query = strings.ToLower(query)

	score := jaroWinkler([]rune(label), []rune(query))
	if containsAllWords(label, query) {
		score++
	}
	return score, score > jaroWinklerMinScore
}

// jaroWinkler returns the Jaro similarity of a and b, raised for a common
// prefix of up to jaroWinklerPrefixSize runes once it exceeds
// jaroWinklerBoostThreshold.
func jaroWinkler(a, b []rune) float64 {
	sim := jaro(a, b)
	if sim <= jaroWinklerBoostThreshold {
		return sim
	}
	prefix := 0
	for prefix < min(len(a), len(b), jaroWinklerPrefixSize) && a[prefix] == b[prefix] {
		prefix++
	}
	return sim + 0.1*float64(prefix)*(1-sim)
}

func jaro(a, b []rune) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	window := max(max(len(a), len(b))/2-1, 0)
	aMatched := make([]bool, len(a))
	bMatched := make([]bool, len(b))
	matches := 0
	for i, r := range a {
		for j := max(i-window, 0); j < min(i+window+1, len(b)); j++ {
			if !bMatched[j] && b[j] == r {
				aMatched[i], bMatched[j] = true, true
				matches++
				break
			}
		}
	}
	if matches == 0 {
		return 0
	}

	transpositions := 0
	j := 0
	for i, r := range a {
		if !aMatched[i] {
			continue
		}
		for !bMatched[j] {
			j++
		}
		if r != b[j] {
			transpositions++
		}
		j++
	}

	m := float64(matches)
	return (m/float64(len(a)) + m/float64(len(b)) + (m-float64(transpositions/2))/m) / 3
}

func containsAllWords(label, query string) bool {
	for word := range strings.FieldsSeq(query) {
		if !strings.Contains(label, word) {
			return false
		}
	}
	return true
}

// SubsequenceMatcher keeps items whose label contains the query characters in
// order, ignoring case, like the file finders of most editors. Labels needing
// fewer extra characters rank first.
type SubsequenceMatcher struct{}

func (SubsequenceMatcher) Score(label, query string) (float64, bool) {
	distance := fuzzy.RankMatchFold(query, label)
	if distance < 0 {
		return 0, false
	}
	return 1 / float64(1+distance), true
}

// filteredView is the searchable view over the items of a choice list.
//
// visible holds indices into the caller's canonical item list, in display
// order. When the filter is disabled it never handles a key and the view
// always covers the whole list.
type filteredView struct {
	enabled bool
	input   TextCursor
	matcher Matcher
	visible []int
}

func (f *filteredView) enable() {
	f.enabled = true
}

// reset shows all n items in their original order.
func (f *filteredView) reset(n int) {
	f.visible = f.visible[:0]
	for i := range n {
		f.visible = append(f.visible, i)
	}
}

// buffer returns the query buffer, or nil when filtering is disabled.
func (f *filteredView) buffer() *TextCursor {
	if !f.enabled {
		return nil
	}
	return &f.input
}

// rank rebuilds the visible list from labels, best score first. Items with
// equal scores keep their original order.
func (f *filteredView) rank(labels []string) {
	matcher := f.matcher
	if matcher == nil {
		matcher = JaroWinklerMatcher{}
	}
	query := f.input.String()

	type scored struct {
		index int
		score float64
	}
	var candidates []scored
	for i, label := range labels {
		if score, ok := matcher.Score(label, query); ok {
			candidates = append(candidates, scored{index: i, score: score})
		}
	}
	slices.SortStableFunc(candidates, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	f.visible = f.visible[:0]
	for _, c := range candidates {
		f.visible = append(f.visible, c.index)
	}
}

// onFilter lets the filter consume key. The driver has already applied the
// key to the query buffer. When handled is false the prompt processes the
// key itself.
//
// Up and Down always pass through. Left and Right pass through while the
// query is empty. Enter passes through when something is visible and
// otherwise reports that nothing matches. Space is removed from the query and
// passes through, so it can toggle items. Every other key refreshes the view.
func onFilter[T any](f *filteredView, key Key, labels []string) (state State[T], handled bool) {
	if !f.enabled {
		return state, false
	}

	switch {
	case key.Code == KeyUp || key.Code == KeyDown:
		return state, false
	case (key.Code == KeyLeft || key.Code == KeyRight) && f.input.IsEmpty():
		return state, false
	case key.Code == KeyEnter:
		if len(f.visible) > 0 {
			return state, false
		}
		return ErrorState[T](msgNoItems), true
	case key.IsRune(' '):
		f.input.DeleteLeft()
		return state, false
	case !f.input.IsEmpty():
		f.rank(labels)
	default:
		f.reset(len(labels))
	}
	return Active[T](), true
}
