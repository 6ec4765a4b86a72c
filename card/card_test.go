package card

import (
	"testing"

	"github.com/matryer/is"
)

func TestParse(t *testing.T) {
	is := is.New(t)
	c, err := Parse("SA")
	is.NoErr(err)
	is.Equal(c, Card{Rank: Ace, Suit: Spades})

	c, err = Parse("h10")
	is.NoErr(err)
	is.Equal(c, Card{Rank: Ten, Suit: Hearts})

	c, err = Parse("HT")
	is.NoErr(err)
	is.Equal(c, Card{Rank: Ten, Suit: Hearts})

	c, err = Parse("♠Q")
	is.NoErr(err)
	is.Equal(c, Card{Rank: Queen, Suit: Spades})

	_, err = Parse("XA")
	is.True(err != nil)
	_, err = Parse("S1")
	is.True(err != nil)
}

func TestStringRoundTrip(t *testing.T) {
	is := is.New(t)
	for _, c := range NewDeck() {
		parsed, err := Parse(c.String())
		is.NoErr(err)
		is.Equal(parsed, c)
	}
}

func TestHandParseRoundTrip(t *testing.T) {
	is := is.New(t)
	h, err := ParseHand("AKQ2.764.853.952")
	is.NoErr(err)
	is.Equal(len(h), HandSize)
	is.Equal(h.String(), "AKQ2.764.853.952")
	is.Equal(h.HCP(), 9) // AKQ = 9, nothing else

	// A void suit still round-trips.
	h, err = ParseHand("AKQJT98765432..." + "")
	is.NoErr(err)
	is.Equal(len(h), HandSize)
	is.True(h.HasSuit(Spades))
	is.True(!h.HasSuit(Hearts))
}

func TestHandRemove(t *testing.T) {
	is := is.New(t)
	h, err := ParseHand("AKQ2.764.853.952")
	is.NoErr(err)
	sa := MustParse("SA")
	is.True(h.Has(sa))
	is.True(h.Remove(sa))
	is.True(!h.Has(sa))
	is.Equal(len(h), HandSize-1)
	is.True(!h.Remove(sa))
}

func TestDeckDealConservation(t *testing.T) {
	is := is.New(t)
	d := NewDeck()
	is.Equal(len(d), DeckSize)
	d.Shuffle()
	hands := d.Deal()
	seen := map[Card]bool{}
	for _, h := range hands {
		is.Equal(len(h), HandSize)
		for _, c := range h {
			is.True(!seen[c])
			seen[c] = true
		}
	}
	is.Equal(len(seen), DeckSize)
}

func TestInSuitSorted(t *testing.T) {
	is := is.New(t)
	h, err := ParseHand("AKQ2.764.853.952")
	is.NoErr(err)
	spades := h.InSuit(Spades)
	is.Equal(len(spades), 4)
	is.Equal(spades[0].Rank, Ace)
	is.Equal(spades[3].Rank, Two)
}
