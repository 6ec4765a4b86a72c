package card

import "lukechampine.com/frand"

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

// Deck is a full ordering of the 52 cards, used to deal out hands.
type Deck []Card

// NewDeck returns an unshuffled deck, clubs-two through spades-ace.
func NewDeck() Deck {
	d := make(Deck, 0, DeckSize)
	for s := Clubs; s <= Spades; s++ {
		for r := Two; r <= Ace; r++ {
			d = append(d, Card{Rank: r, Suit: s})
		}
	}
	return d
}

// Shuffle permutes the deck in place.
func (d Deck) Shuffle() {
	frand.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// Deal splits the deck into four 13-card hands, in deck order.
func (d Deck) Deal() [4]Hand {
	var hands [4]Hand
	for i := range hands {
		hands[i] = Hand(d[i*HandSize : (i+1)*HandSize]).Copy()
	}
	return hands
}
