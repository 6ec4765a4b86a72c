package game

import (
	"github.com/samber/lo"

	"github.com/JFrunk/bridgeplay/deal"
)

// This file is the rules engine for the single-player adaptation: pure
// queries over the play state that decide which hands are face up and
// which seats the human is allowed to act for. One human plays against two
// automated opponents; when the human's partnership declares, the human
// runs both of its seats, the way declarer runs dummy in the four-player
// game. None of these queries mutate the state.

// VisibleHands returns the seats whose hands are face up to the human: the
// human's own seat always, both seats of the human's partnership when that
// partnership declares, and dummy for everyone once the opening lead has
// been made.
func (g *Game) VisibleHands() []deal.Position {
	visible := []deal.Position{g.humanSeat}
	if g.humanSeat.Side() == g.contract.Declarer.Side() {
		visible = append(visible, g.humanSeat.Partner())
	}
	if g.openingLeadMade {
		visible = append(visible, g.contract.Dummy())
	}
	return lo.Uniq(visible)
}

// ControllableSeats returns the seats whose turns the human takes: both
// seats of the declaring partnership when the human's side declares,
// otherwise only the human's own seat. It is never empty, and it never
// contains a seat run by the automated opponents.
func (g *Game) ControllableSeats() []deal.Position {
	if g.humanSeat.Side() == g.contract.Declarer.Side() {
		return []deal.Position{g.contract.Declarer, g.contract.Dummy()}
	}
	return []deal.Position{g.humanSeat}
}

// IsHumanTurn reports whether the seat due to play is under the human's
// control.
func (g *Game) IsHumanTurn() bool {
	return lo.Contains(g.ControllableSeats(), g.nextToPlay)
}

// HumanRole returns the human seat's role under the current contract.
func (g *Game) HumanRole() deal.Role {
	return g.contract.RoleOf(g.humanSeat)
}
