package dds

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/JFrunk/bridgeplay/card"
	"github.com/JFrunk/bridgeplay/deal"
	"github.com/JFrunk/bridgeplay/game"
	"github.com/JFrunk/bridgeplay/solver/alphabeta"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

func testGame(t *testing.T) *game.Game {
	t.Helper()
	pbn := map[deal.Position]string{
		deal.North: "KQJ2.876.854.952",
		deal.East:  ".QJT9543..QJT876",
		deal.South: "AT98.AK2.AK2.AK3",
		deal.West:  "76543..QJT9763.4",
	}
	var hands [deal.NumPositions]card.Hand
	for seat, s := range pbn {
		h, err := card.ParseHand(s)
		if err != nil {
			t.Fatal(err)
		}
		hands[seat] = h
	}
	c := deal.Contract{Level: 4, Strain: deal.StrainSpades, Declarer: deal.South}
	g, err := game.NewGame(c, hands, deal.North, deal.Vulnerability{})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func newFallback() *alphabeta.Solver {
	return alphabeta.New(3, 0)
}

type engineFunc func(ctx context.Context, req Request) (Response, error)

func (f engineFunc) Solve(ctx context.Context, req Request) (Response, error) {
	return f(ctx, req)
}

func assertLegalFallback(t *testing.T, g *game.Game, sel Selection) {
	t.Helper()
	is := is.New(t)
	is.True(sel.UsedFallback)
	legal, err := g.LegalPlays(g.NextToPlay())
	is.NoErr(err)
	is.True(lo.Contains(legal, sel.Card))
}

func TestNilEngineFallsBack(t *testing.T) {
	is := is.New(t)
	g := testGame(t)
	s := NewStrategy(nil, newFallback(), time.Second)
	sel, err := s.SelectCard(g, deal.West)
	is.NoErr(err)
	assertLegalFallback(t, g, sel)
}

func TestPanickingEngineFallsBack(t *testing.T) {
	is := is.New(t)
	g := testGame(t)
	engine := engineFunc(func(context.Context, Request) (Response, error) {
		panic("solver blew up")
	})
	s := NewStrategy(engine, newFallback(), time.Second)
	sel, err := s.SelectCard(g, deal.West)
	is.NoErr(err)
	assertLegalFallback(t, g, sel)
	// The crash never touched the live state.
	is.Equal(g.CardsPlayed(), 0)
	is.Equal(len(g.Hand(deal.West)), card.HandSize)
}

func TestErroringEngineFallsBack(t *testing.T) {
	is := is.New(t)
	g := testGame(t)
	engine := engineFunc(func(context.Context, Request) (Response, error) {
		return Response{}, errors.New("exit status 139")
	})
	s := NewStrategy(engine, newFallback(), time.Second)
	sel, err := s.SelectCard(g, deal.West)
	is.NoErr(err)
	assertLegalFallback(t, g, sel)
}

func TestIllegalAnswerFallsBack(t *testing.T) {
	is := is.New(t)
	g := testGame(t)
	// SA belongs to South; West cannot play it.
	engine := engineFunc(func(context.Context, Request) (Response, error) {
		return Response{Card: "SA", Tricks: 13}, nil
	})
	s := NewStrategy(engine, newFallback(), time.Second)
	sel, err := s.SelectCard(g, deal.West)
	is.NoErr(err)
	assertLegalFallback(t, g, sel)
}

func TestGarbageOutputFallsBack(t *testing.T) {
	is := is.New(t)
	g := testGame(t)
	engine := engineFunc(func(context.Context, Request) (Response, error) {
		return Response{Card: "Z9"}, nil
	})
	s := NewStrategy(engine, newFallback(), time.Second)
	sel, err := s.SelectCard(g, deal.West)
	is.NoErr(err)
	assertLegalFallback(t, g, sel)
}

func TestCooperatingEngineIsUsed(t *testing.T) {
	is := is.New(t)
	g := testGame(t)
	var seen Request
	engine := engineFunc(func(_ context.Context, req Request) (Response, error) {
		seen = req
		return Response{Card: "D3", Tricks: 5}, nil
	})
	s := NewStrategy(engine, newFallback(), time.Second)
	sel, err := s.SelectCard(g, deal.West)
	is.NoErr(err)
	is.True(!sel.UsedFallback)
	is.Equal(sel.Card, card.MustParse("D3"))

	// The engine saw a full-information snapshot.
	is.Equal(seen.ToPlay, "W")
	is.Equal(seen.Trump, "♠")
	is.Equal(len(seen.Hands), 4)
	is.Equal(len(seen.CurrentTrick), 0)
}

func TestForcedCardSkipsEngine(t *testing.T) {
	is := is.New(t)
	g := testGame(t)

	// Walk forward until some seat has a singleton legal set and confirm
	// the engine is not consulted for it.
	called := false
	engine := engineFunc(func(context.Context, Request) (Response, error) {
		called = true
		return Response{}, errors.New("should not be called")
	})
	s := NewStrategy(engine, newFallback(), time.Second)
	for !g.Complete() {
		seat := g.NextToPlay()
		legal, err := g.LegalPlays(seat)
		is.NoErr(err)
		if len(legal) == 1 {
			sel, err := s.SelectCard(g, seat)
			is.NoErr(err)
			is.Equal(sel.Card, legal[0])
			is.True(!sel.UsedFallback)
			is.True(!called)
			return
		}
		is.NoErr(g.PlayCard(seat, legal[0]))
	}
	t.Fatal("never reached a forced play")
}

func TestTimeoutFallsBack(t *testing.T) {
	is := is.New(t)
	g := testGame(t)
	engine := engineFunc(func(ctx context.Context, _ Request) (Response, error) {
		<-ctx.Done()
		return Response{}, ctx.Err()
	})
	s := NewStrategy(engine, newFallback(), 10*time.Millisecond)
	start := time.Now()
	sel, err := s.SelectCard(g, deal.West)
	is.NoErr(err)
	assertLegalFallback(t, g, sel)
	is.True(time.Since(start) < 5*time.Second)
}
