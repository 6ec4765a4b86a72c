// Package card contains the basic value types for cards, hands, and decks.
// A Card is an immutable (rank, suit) pair; a Hand is an owned, shrinking
// collection of cards. Nothing in this package knows about contracts or
// trick rules.
package card

import (
	"fmt"
	"strings"
)

// Suit is one of the four suits, ordered clubs low to spades high. The
// ordering only matters for display and deterministic iteration; no suit
// outranks another except via the trump rules in the game package.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

const NumSuits = 4

var suitRunes = []rune{'♣', '♦', '♥', '♠'}
var suitLetters = []byte{'C', 'D', 'H', 'S'}

func (s Suit) String() string {
	if s > Spades {
		return "?"
	}
	return string(suitRunes[s])
}

// Letter returns the ASCII letter for this suit (C, D, H, S), used in
// deal files and the shell, where the symbols are awkward to type.
func (s Suit) Letter() byte {
	return suitLetters[s]
}

// Suits lists all suits from spades down to clubs, the conventional
// display order.
func Suits() []Suit {
	return []Suit{Spades, Hearts, Diamonds, Clubs}
}

// Rank is a card rank; numeric values are their own rank, J=11, Q=12,
// K=13, A=14. Aces are always high.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankChars = "23456789TJQKA"

func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	if r == Ten {
		return "10"
	}
	return string(rankChars[r-Two])
}

// HCP returns the high-card point value of the rank (A=4, K=3, Q=2, J=1).
func (r Rank) HCP() int {
	if r > Ten {
		return int(r - Ten)
	}
	return 0
}

// Card is an immutable card value. Equality is by (rank, suit).
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return c.Suit.String() + c.Rank.String()
}

func parseSuit(b byte) (Suit, bool) {
	switch b {
	case 'C', 'c':
		return Clubs, true
	case 'D', 'd':
		return Diamonds, true
	case 'H', 'h':
		return Hearts, true
	case 'S', 's':
		return Spades, true
	}
	return 0, false
}

func parseRank(s string) (Rank, bool) {
	if s == "10" {
		return Ten, true
	}
	if len(s) != 1 {
		return 0, false
	}
	idx := strings.IndexByte(rankChars, s[0])
	if idx == -1 {
		idx = strings.IndexByte(strings.ToLower(rankChars), s[0])
	}
	if idx == -1 {
		return 0, false
	}
	return Rank(idx) + Two, true
}

// Parse reads a card in suit-first notation: "SA", "H10" / "HT", "c2".
// Suit symbols (♠A) are also accepted.
func Parse(s string) (Card, error) {
	orig := s
	var suit Suit
	found := false
	for i, r := range suitRunes {
		if strings.HasPrefix(s, string(r)) {
			suit = Suit(i)
			found = true
			s = strings.TrimPrefix(s, string(r))
			break
		}
	}
	if !found {
		if len(s) < 2 {
			return Card{}, fmt.Errorf("malformed card %q", orig)
		}
		var ok bool
		suit, ok = parseSuit(s[0])
		if !ok {
			return Card{}, fmt.Errorf("malformed card %q: bad suit", orig)
		}
		s = s[1:]
	}
	rank, ok := parseRank(s)
	if !ok {
		return Card{}, fmt.Errorf("malformed card %q: bad rank", orig)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// MustParse is Parse for tests and constants; it panics on bad input.
func MustParse(s string) Card {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}
