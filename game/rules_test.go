package game

import (
	"testing"

	"github.com/matryer/is"
	"github.com/samber/lo"

	"github.com/JFrunk/bridgeplay/card"
	"github.com/JFrunk/bridgeplay/deal"
)

func gameWithDeclarer(t *testing.T, declarer deal.Position) *Game {
	t.Helper()
	c := deal.Contract{Level: 4, Strain: deal.StrainSpades, Declarer: declarer}
	g, err := NewGame(c, fixedHands(t), deal.North, deal.Vulnerability{})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestControllableSeats(t *testing.T) {
	is := is.New(t)

	// Human side declares: the human runs declarer and dummy, South
	// declaring or North declaring alike.
	g := gameWithDeclarer(t, deal.South)
	is.Equal(g.ControllableSeats(), []deal.Position{deal.South, deal.North})

	g = gameWithDeclarer(t, deal.North)
	is.Equal(g.ControllableSeats(), []deal.Position{deal.North, deal.South})

	// Defending: the human runs only their own seat.
	g = gameWithDeclarer(t, deal.East)
	is.Equal(g.ControllableSeats(), []deal.Position{deal.South})

	// Control is never empty and never includes an automated opponent.
	for _, declarer := range deal.Positions() {
		for _, human := range deal.Positions() {
			g := gameWithDeclarer(t, declarer)
			g.SetHumanSeat(human)
			seats := g.ControllableSeats()
			is.True(len(seats) > 0)
			for _, s := range seats {
				is.Equal(s.Side(), human.Side())
			}
		}
	}
}

func TestVisibleHands(t *testing.T) {
	is := is.New(t)

	// Human defends: only their own hand before the opening lead.
	g := gameWithDeclarer(t, deal.East)
	is.Equal(g.VisibleHands(), []deal.Position{deal.South})

	// After the lead, dummy goes face up for everyone.
	is.NoErr(g.PlayCard(deal.South, card.MustParse("S8")))
	visible := g.VisibleHands()
	is.True(lo.Contains(visible, deal.South))
	is.True(lo.Contains(visible, deal.West)) // dummy
	is.Equal(len(visible), 2)

	// Human side declares: partner's hand is visible from the start, and
	// the dummy entry does not duplicate it after the lead.
	g = gameWithDeclarer(t, deal.North)
	visible = g.VisibleHands()
	is.True(lo.Contains(visible, deal.South))
	is.True(lo.Contains(visible, deal.North))
	is.Equal(len(visible), 2)

	is.NoErr(g.PlayCard(deal.East, card.MustParse("H3")))
	is.Equal(len(g.VisibleHands()), 2)
}

func TestIsHumanTurn(t *testing.T) {
	is := is.New(t)
	// 4S by East: South leads, and that lead is the human's to make.
	g := gameWithDeclarer(t, deal.East)
	is.Equal(g.NextToPlay(), deal.South)
	is.True(g.IsHumanTurn())
	is.Equal(g.HumanRole(), deal.RoleDefender)

	is.NoErr(g.PlayCard(deal.South, card.MustParse("S8")))
	is.True(!g.IsHumanTurn()) // West is automated

	// 4S by North: East leads, then dummy South is human-run.
	g = gameWithDeclarer(t, deal.North)
	is.True(!g.IsHumanTurn())
	is.Equal(g.HumanRole(), deal.RoleDummy)
	is.NoErr(g.PlayCard(deal.East, card.MustParse("H3")))
	is.Equal(g.NextToPlay(), deal.South)
	is.True(g.IsHumanTurn())
}

func TestDisplayInfoHidesHands(t *testing.T) {
	is := is.New(t)
	g := gameWithDeclarer(t, deal.East)
	info := g.DisplayInfo()

	is.Equal(info.Contract, "4♠ by E")
	is.Equal(info.Role, "defender")
	is.True(info.IsHumanTurn)
	is.Equal(len(info.VisibleHands), 1)
	_, ok := info.VisibleHands["S"]
	is.True(ok)
	is.Equal(info.Controllable, []string{"S"})
	is.True(!info.IsComplete)
	is.True(info.Result == nil)

	is.NoErr(g.PlayCard(deal.South, card.MustParse("S8")))
	info = g.DisplayInfo()
	is.Equal(len(info.VisibleHands), 2) // dummy now face up
	is.Equal(info.CurrentTrick, []string{"S:♠8"})
}
