package game

import (
	"fmt"

	"github.com/JFrunk/bridgeplay/card"
	"github.com/JFrunk/bridgeplay/deal"
)

// playBackup records the delta of a single applied play so the solvers can
// walk the game tree with PlayCard/UnplayLastMove instead of copying the
// whole state at every node.
type playBackup struct {
	seat            deal.Position
	card            card.Card
	prevNext        deal.Position
	completedTrick  bool
	prevOpeningLead bool
	prevComplete    bool
}

func (g *Game) pushBackup(seat deal.Position, c card.Card) {
	g.stack = append(g.stack, playBackup{
		seat:            seat,
		card:            c,
		prevNext:        g.nextToPlay,
		completedTrick:  len(g.current.Plays) == TrickSize-1,
		prevOpeningLead: g.openingLeadMade,
		prevComplete:    g.complete,
	})
}

// UnplayLastMove reverses the most recent applied play, restoring hands,
// trick state, turn, and completion flags. It is the inverse of PlayCard
// and is what the search strategies use to backtrack.
func (g *Game) UnplayLastMove() error {
	if len(g.stack) == 0 {
		return fmt.Errorf("%w: nothing to unplay", ErrInvariant)
	}
	b := g.stack[len(g.stack)-1]
	g.stack = g.stack[:len(g.stack)-1]

	if b.completedTrick {
		// The play being reversed resolved a trick: pull it back out of
		// the archive and reopen it.
		last := g.tricks[len(g.tricks)-1]
		g.tricks = g.tricks[:len(g.tricks)-1]
		last.WonBy = 0
		g.current = last
	}
	n := len(g.current.Plays)
	played := g.current.Plays[n-1]
	g.current.Plays = g.current.Plays[:n-1]
	g.hands[played.Seat].Add(played.Card)

	g.nextToPlay = b.prevNext
	g.openingLeadMade = b.prevOpeningLead
	g.complete = b.prevComplete
	g.result = nil
	return nil
}

// Copy returns a deep copy of the game with an empty backup stack. The
// solvers copy once per decision and then play/unplay on the copy, so an
// abandoned or failed search can never corrupt the caller's state.
func (g *Game) Copy() *Game {
	cp := &Game{
		contract:        g.contract,
		dealer:          g.dealer,
		vul:             g.vul,
		humanSeat:       g.humanSeat,
		current:         g.current.Copy(),
		nextToPlay:      g.nextToPlay,
		openingLeadMade: g.openingLeadMade,
		complete:        g.complete,
	}
	for i := range g.hands {
		cp.hands[i] = g.hands[i].Copy()
	}
	cp.tricks = make([]Trick, len(g.tricks))
	for i := range g.tricks {
		cp.tricks[i] = g.tricks[i].Copy()
	}
	if g.result != nil {
		res := *g.result
		cp.result = &res
	}
	return cp
}
