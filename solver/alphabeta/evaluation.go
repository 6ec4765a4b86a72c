package alphabeta

import (
	"github.com/JFrunk/bridgeplay/card"
	"github.com/JFrunk/bridgeplay/deal"
	"github.com/JFrunk/bridgeplay/game"
)

// evaluate scores a cutoff node from the declaring side's perspective:
// tricks already banked plus an estimate of remaining trick potential.
// The estimate counts sure winners (cards no remaining opponent card can
// beat), credits half a trick for each finesse position, and a small
// amount for holding the trump balance. Since the search sees all four
// hands, the estimate only has to be cheap, not clairvoyant; terminal
// nodes are exact.
func evaluate(g *game.Game, declSide deal.Side) float32 {
	banked := float32(g.TricksWonBy(declSide))
	if g.Complete() {
		return banked
	}
	remaining := float32(game.NumTricks - len(g.Tricks()))

	potential := float32(0)
	for s := card.Clubs; s <= card.Spades; s++ {
		potential += suitPotential(g, declSide, s)
	}
	if trump, ok := g.Contract().Trump(); ok {
		potential += trumpControl(g, declSide, trump)
	}
	if potential > remaining {
		potential = remaining
	}
	return banked + potential
}

// suitPotential estimates the declaring side's tricks in one suit: one per
// sure winner, plus half for a finesse position (second-best remaining
// card sitting behind the best).
func suitPotential(g *game.Game, declSide deal.Side, s card.Suit) float32 {
	ours := make([]card.Rank, 0, 13)
	theirs := make([]card.Rank, 0, 13)
	for _, seat := range deal.Positions() {
		for _, c := range g.Hand(seat) {
			if c.Suit != s {
				continue
			}
			if seat.Side() == declSide {
				ours = append(ours, c.Rank)
			} else {
				theirs = append(theirs, c.Rank)
			}
		}
	}
	if len(ours) == 0 {
		return 0
	}
	oppBest := card.Rank(0)
	for _, r := range theirs {
		if r > oppBest {
			oppBest = r
		}
	}
	val := float32(0)
	secondBest := card.Rank(0)
	for _, r := range ours {
		if r > oppBest {
			val++
		} else if r > secondBest {
			secondBest = r
		}
	}
	// A finesse position: our best card below the opponents' top card is
	// only one step below it, so roughly half the layouts let it score.
	if oppBest > 0 && secondBest == oppBest-1 {
		val += 0.5
	}
	return val
}

// trumpControl rewards holding more trumps than the defenders; a spare
// trump is worth about a quarter trick of ruffing potential.
func trumpControl(g *game.Game, declSide deal.Side, trump card.Suit) float32 {
	ours, theirs := 0, 0
	for _, seat := range deal.Positions() {
		n := len(g.Hand(seat).InSuit(trump))
		if seat.Side() == declSide {
			ours += n
		} else {
			theirs += n
		}
	}
	if ours <= theirs {
		return 0
	}
	return 0.25 * float32(ours-theirs)
}
