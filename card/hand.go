package card

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// HandSize is the number of cards dealt to each seat.
const HandSize = 13

// Hand is an owned, mutable collection of cards. It starts at 13 cards and
// only ever shrinks as cards are played. The zero value is an empty hand.
type Hand []Card

// Has reports whether the hand contains c.
func (h Hand) Has(c Card) bool {
	return lo.Contains(h, c)
}

// Remove deletes c from the hand, reporting whether it was present.
func (h *Hand) Remove(c Card) bool {
	for i, hc := range *h {
		if hc == c {
			*h = append((*h)[:i], (*h)[i+1:]...)
			return true
		}
	}
	return false
}

// Add puts a card back into the hand. Only the game package's unplay path
// should need this.
func (h *Hand) Add(c Card) {
	*h = append(*h, c)
}

// InSuit returns the cards of the given suit, highest first.
func (h Hand) InSuit(s Suit) []Card {
	cards := lo.Filter(h, func(c Card, _ int) bool { return c.Suit == s })
	sort.Slice(cards, func(i, j int) bool { return cards[i].Rank > cards[j].Rank })
	return cards
}

// HasSuit reports whether the hand holds at least one card of s.
func (h Hand) HasSuit(s Suit) bool {
	return lo.SomeBy(h, func(c Card) bool { return c.Suit == s })
}

// HCP sums the high-card points of the hand.
func (h Hand) HCP() int {
	return lo.SumBy(h, func(c Card) int { return c.Rank.HCP() })
}

// Copy returns an independent copy of the hand.
func (h Hand) Copy() Hand {
	cp := make(Hand, len(h))
	copy(cp, h)
	return cp
}

// Sorted returns the hand ordered by suit (spades first) and descending
// rank within each suit, without mutating the receiver.
func (h Hand) Sorted() Hand {
	cp := h.Copy()
	sort.Slice(cp, func(i, j int) bool {
		if cp[i].Suit != cp[j].Suit {
			return cp[i].Suit > cp[j].Suit
		}
		return cp[i].Rank > cp[j].Rank
	})
	return cp
}

// String renders the hand in dotted PBN order (spades.hearts.diamonds.clubs),
// e.g. "AKQ2.764.853.952". Void suits render as an empty segment.
func (h Hand) String() string {
	segs := make([]string, 0, NumSuits)
	for _, s := range Suits() {
		var b strings.Builder
		for _, c := range h.InSuit(s) {
			if c.Rank == Ten {
				b.WriteByte('T')
			} else {
				b.WriteString(c.Rank.String())
			}
		}
		segs = append(segs, b.String())
	}
	return strings.Join(segs, ".")
}

// ParseHand reads the dotted PBN hand notation produced by Hand.String.
func ParseHand(s string) (Hand, error) {
	segs := strings.Split(s, ".")
	if len(segs) != NumSuits {
		return nil, fmt.Errorf("hand %q: want 4 dot-separated suits, got %d", s, len(segs))
	}
	h := make(Hand, 0, HandSize)
	for i, seg := range segs {
		suit := Suits()[i]
		for _, rc := range seg {
			rank, ok := parseRank(string(rc))
			if !ok {
				return nil, fmt.Errorf("hand %q: bad rank %q", s, rc)
			}
			h = append(h, Card{Rank: rank, Suit: suit})
		}
	}
	return h, nil
}
