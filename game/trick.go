package game

import (
	"strings"

	"github.com/JFrunk/bridgeplay/card"
	"github.com/JFrunk/bridgeplay/deal"
)

// TrickSize is the number of cards in a completed trick.
const TrickSize = 4

// Play is one card played by one seat.
type Play struct {
	Seat deal.Position
	Card card.Card
}

// Trick is an ordered sequence of up to four plays. The first play is the
// lead. WonBy is only meaningful once the trick is complete.
type Trick struct {
	Plays []Play
	WonBy deal.Position
}

// Leader returns the seat that led, and false for an empty trick.
func (t *Trick) Leader() (deal.Position, bool) {
	if len(t.Plays) == 0 {
		return 0, false
	}
	return t.Plays[0].Seat, true
}

// LedSuit returns the suit of the first card played, and false for an
// empty trick.
func (t *Trick) LedSuit() (card.Suit, bool) {
	if len(t.Plays) == 0 {
		return 0, false
	}
	return t.Plays[0].Card.Suit, true
}

// Complete reports whether all four seats have played.
func (t *Trick) Complete() bool {
	return len(t.Plays) == TrickSize
}

// WinningPlay returns the play currently winning the trick, and false for
// an empty trick. A trump beats any non-trump; otherwise only cards of the
// suit currently winning compete on rank.
func (t *Trick) WinningPlay(strain deal.Strain) (Play, bool) {
	if len(t.Plays) == 0 {
		return Play{}, false
	}
	best := t.Plays[0]
	trump, hasTrump := strain.TrumpSuit()
	for _, p := range t.Plays[1:] {
		switch {
		case hasTrump && p.Card.Suit == trump && best.Card.Suit != trump:
			best = p
		case p.Card.Suit == best.Card.Suit && p.Card.Rank > best.Card.Rank:
			best = p
		}
	}
	return best, true
}

// Winner resolves the winning seat of a complete trick. If the strain is a
// trump suit and any trump was played, the highest trump wins; otherwise
// the highest card of the led suit wins. A deal has no duplicate cards, so
// there are no ties.
func (t *Trick) Winner(strain deal.Strain) deal.Position {
	best, _ := t.WinningPlay(strain)
	return best.Seat
}

// Beats reports whether playing c now would take over the trick.
func (t *Trick) Beats(c card.Card, strain deal.Strain) bool {
	best, ok := t.WinningPlay(strain)
	if !ok {
		return true
	}
	trump, hasTrump := strain.TrumpSuit()
	if hasTrump && c.Suit == trump && best.Card.Suit != trump {
		return true
	}
	return c.Suit == best.Card.Suit && c.Rank > best.Card.Rank
}

// Copy returns an independent copy of the trick.
func (t *Trick) Copy() Trick {
	cp := Trick{WonBy: t.WonBy}
	cp.Plays = make([]Play, len(t.Plays))
	copy(cp.Plays, t.Plays)
	return cp
}

func (t *Trick) String() string {
	parts := make([]string, 0, len(t.Plays))
	for _, p := range t.Plays {
		parts = append(parts, p.Seat.String()+":"+p.Card.String())
	}
	return strings.Join(parts, " ")
}
