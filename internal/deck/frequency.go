package deck

import (
	"fmt"
	"sort"

	"github.com/arcanaland/dealdeck/internal/card"
)

// MaxCopies bounds how many copies of one card a playing deck may hold
const MaxCopies = 12

// Frequencies holds the number of copies of each catalog card, indexed by card id
type Frequencies []int

var defaultCopies = []int{
	// properties
	2, 3, 3, 3, 3, 3, 4, 3, 2, 2,
	// wildcards
	1, 2, 2, 1, 1, 1, 1, 2,
	// rent
	3, 2, 2, 2, 2, 2,
	// action
	2, 3, 3, 3, 3, 2, 3, 3, 2, 10,
	// money
	1, 2, 3, 3, 5, 6,
}

// DefaultFrequencies returns the standard deck composition for the built-in catalog
func DefaultFrequencies() Frequencies {
	return append(Frequencies(nil), defaultCopies...)
}

// Total returns the number of cards in a playing deck built with f
func (f Frequencies) Total() int {
	total := 0
	for _, n := range f {
		total += n
	}
	return total
}

// Copies returns the number of copies of the card with the given id
func (f Frequencies) Copies(id int) int {
	if id < 0 || id >= len(f) {
		return 0
	}
	return f[id]
}

// WithActionOverrides returns a copy of f where the action cards named in
// overrides use the given number of copies.
func (f Frequencies) WithActionOverrides(cards []card.Card, overrides map[string]int) (Frequencies, error) {
	out := append(Frequencies(nil), f...)
	if len(overrides) == 0 {
		return out, nil
	}

	byTitle := make(map[string]int)
	for _, c := range cards {
		if c.Type == card.Action {
			byTitle[c.Title] = c.ID
		}
	}

	// Sorted so that the reported error does not depend on map order
	titles := make([]string, 0, len(overrides))
	for title := range overrides {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	for _, title := range titles {
		n := overrides[title]
		id, ok := byTitle[title]
		if !ok {
			return nil, fmt.Errorf("unknown action card: %q", title)
		}
		if n < 0 || n > MaxCopies {
			return nil, fmt.Errorf("frequency of %q must be between 0 and %d, got %d", title, MaxCopies, n)
		}
		if id >= len(out) {
			return nil, fmt.Errorf("no frequency slot for card %d", id)
		}
		out[id] = n
	}

	return out, nil
}

// Expand returns the draw pile for a playing deck: each card repeated by its
// frequency, in catalog order.
func Expand(cards []card.Card, f Frequencies) []card.Card {
	pile := make([]card.Card, 0, f.Total())
	for _, c := range cards {
		for i := 0; i < f.Copies(c.ID); i++ {
			pile = append(pile, c)
		}
	}
	return pile
}
