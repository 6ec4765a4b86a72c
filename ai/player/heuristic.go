package player

import (
	"sort"

	"github.com/samber/lo"

	"github.com/JFrunk/bridgeplay/card"
	"github.com/JFrunk/bridgeplay/deal"
	"github.com/JFrunk/bridgeplay/game"
)

// Recommend is the beginner-level rule cascade, also used by the search
// strategy as its move-ordering hint. It applies classic table rules in
// order: return partner's suit on a lead, second hand low, third hand high
// (taking a finesse when the visible layout supports one), and otherwise
// cover as cheaply as possible. It is deterministic and does no search.
func Recommend(g *game.Game, seat deal.Position) (card.Card, error) {
	legal, err := g.LegalPlays(seat)
	if err != nil {
		return card.Card{}, err
	}
	trick := g.CurrentTrick()
	switch len(trick.Plays) {
	case 0:
		return chooseLead(g, seat, legal), nil
	case 1:
		return lowest(legal), nil
	case 2:
		return thirdHand(g, seat, legal, &trick), nil
	default:
		return fourthHand(g, legal, &trick), nil
	}
}

func lowest(cards []card.Card) card.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Rank < best.Rank {
			best = c
		}
	}
	return best
}

func highest(cards []card.Card) card.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Rank > best.Rank {
			best = c
		}
	}
	return best
}

// partnerLedSuits collects suits partner has led earlier in the deal,
// most recent first.
func partnerLedSuits(g *game.Game, seat deal.Position) []card.Suit {
	partner := seat.Partner()
	var suits []card.Suit
	tricks := g.Tricks()
	for i := len(tricks) - 1; i >= 0; i-- {
		if leader, ok := tricks[i].Leader(); ok && leader == partner {
			if s, ok := tricks[i].LedSuit(); ok {
				suits = append(suits, s)
			}
		}
	}
	return lo.Uniq(suits)
}

// chooseLead returns partner's previously led suit when we hold it,
// otherwise a low card from our longest suit.
func chooseLead(g *game.Game, seat deal.Position, legal []card.Card) card.Card {
	for _, s := range partnerLedSuits(g, seat) {
		if inSuit := suitCards(legal, s); len(inSuit) > 0 {
			return lowest(inSuit)
		}
	}
	bySuit := lo.GroupBy(legal, func(c card.Card) card.Suit { return c.Suit })
	suits := lo.Keys(bySuit)
	sort.Slice(suits, func(i, j int) bool {
		if len(bySuit[suits[i]]) != len(bySuit[suits[j]]) {
			return len(bySuit[suits[i]]) > len(bySuit[suits[j]])
		}
		return suits[i] > suits[j]
	})
	return lowest(bySuit[suits[0]])
}

func suitCards(cards []card.Card, s card.Suit) []card.Card {
	return lo.Filter(cards, func(c card.Card, _ int) bool { return c.Suit == s })
}

// finesseCard looks for a tenace in the legal cards: a holding with a high
// honor and a lower honor around a missing card that the opponents still
// hold (classically A-Q missing the K). When the layout supports it, the
// lower honor is the finesse. Visibility is not an issue for this check:
// it only inspects our own legal cards and the cards already played.
func finesseCard(g *game.Game, legal []card.Card) (card.Card, bool) {
	if len(legal) < 2 {
		return card.Card{}, false
	}
	suit := legal[0].Suit
	ranked := suitCards(legal, suit)
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].Rank > ranked[j].Rank })
	for i := 0; i+1 < len(ranked); i++ {
		gap := int(ranked[i].Rank) - int(ranked[i+1].Rank)
		if gap == 2 && ranked[i].Rank >= card.Queen {
			missing := card.Card{Rank: ranked[i].Rank - 1, Suit: suit}
			if !cardAlreadyPlayed(g, missing) {
				return ranked[i+1], true
			}
		}
	}
	return card.Card{}, false
}

func cardAlreadyPlayed(g *game.Game, c card.Card) bool {
	for _, t := range g.Tricks() {
		for _, p := range t.Plays {
			if p.Card == c {
				return true
			}
		}
	}
	for _, p := range g.CurrentTrick().Plays {
		if p.Card == c {
			return true
		}
	}
	return false
}

// thirdHand plays high to fight for the trick, preferring a finesse when
// one is on, and signals low when partner already holds the trick.
func thirdHand(g *game.Game, seat deal.Position, legal []card.Card, trick *game.Trick) card.Card {
	strain := g.Contract().Strain
	if winning, ok := trick.WinningPlay(strain); ok && winning.Seat == seat.Partner() {
		if !trick.Beats(highest(legal), strain) {
			return lowest(legal)
		}
		// Partner is winning cheaply enough; don't overtake.
		if winning.Card.Rank >= card.Ten {
			return lowest(legal)
		}
	}
	if c, ok := finesseCard(g, legal); ok && trick.Beats(c, strain) {
		return c
	}
	hi := highest(legal)
	if trick.Beats(hi, strain) {
		return hi
	}
	return lowest(legal)
}

// fourthHand wins the trick with the cheapest card that does, keeps the
// cheap card when partner already holds the trick, and otherwise discards
// the lowest.
func fourthHand(g *game.Game, legal []card.Card, trick *game.Trick) card.Card {
	strain := g.Contract().Strain
	if winning, ok := trick.WinningPlay(strain); ok && winning.Seat.Side() == fourthSeatSide(trick) {
		return lowest(legal)
	}
	winners := lo.Filter(legal, func(c card.Card, _ int) bool { return trick.Beats(c, strain) })
	if len(winners) > 0 {
		return lowest(winners)
	}
	return lowest(legal)
}

// fourthSeatSide is the side of the player due to play fourth.
func fourthSeatSide(trick *game.Trick) deal.Side {
	return trick.Plays[2].Seat.Next().Side()
}
