package player

import (
	"errors"
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/JFrunk/bridgeplay/card"
	"github.com/JFrunk/bridgeplay/config"
	"github.com/JFrunk/bridgeplay/deal"
	"github.com/JFrunk/bridgeplay/events"
	"github.com/JFrunk/bridgeplay/game"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

func TestParseLevel(t *testing.T) {
	is := is.New(t)
	for _, s := range []string{"beginner", "intermediate", "advanced", "expert"} {
		l, err := ParseLevel(s)
		is.NoErr(err)
		is.Equal(string(l), s)
	}
	_, err := ParseLevel("grandmaster")
	is.True(err != nil)
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	// Shallow depths keep the tests fast.
	cfg.IntermediateDepth = 2
	cfg.AdvancedDepth = 3
	cfg.FallbackDepth = 3
	cfg.AlphaBetaTimeLimitMs = 0
	return cfg
}

func TestEveryLevelPlaysAFullDeal(t *testing.T) {
	for _, level := range []Level{Beginner, Intermediate, Advanced, Expert} {
		t.Run(string(level), func(t *testing.T) {
			is := is.New(t)
			sel, err := New(level, testConfig())
			is.NoErr(err)

			g := spadeGame(t)
			for !g.Complete() {
				d, err := SelectAndPlay(g, g.NextToPlay(), sel, events.NopPublisher{})
				is.NoErr(err)
				is.Equal(d.Level, level)
			}
			is.Equal(len(g.Tricks()), game.NumTricks)
			is.True(g.Result() != nil)
		})
	}
}

func TestExpertWithoutOracleRecordsFallback(t *testing.T) {
	is := is.New(t)
	cfg := testConfig()
	is.Equal(cfg.DDSPath, "") // no solver binary configured
	sel, err := New(Expert, cfg)
	is.NoErr(err)

	g := spadeGame(t)
	d, err := sel.SelectCard(g, deal.West)
	is.NoErr(err)
	is.True(d.UsedFallback)
	legal, err := g.LegalPlays(deal.West)
	is.NoErr(err)
	found := false
	for _, c := range legal {
		if c == d.Card {
			found = true
		}
	}
	is.True(found)
}

type recordingPublisher struct {
	decisions []events.Decision
}

func (r *recordingPublisher) Publish(d events.Decision) {
	r.decisions = append(r.decisions, d)
}

func (r *recordingPublisher) Close() {}

func TestSelectAndPlayPublishes(t *testing.T) {
	is := is.New(t)
	sel, err := New(Beginner, testConfig())
	is.NoErr(err)

	g := spadeGame(t)
	pub := &recordingPublisher{}
	d, err := SelectAndPlay(g, deal.West, sel, pub)
	is.NoErr(err)
	is.Equal(g.CardsPlayed(), 1)
	is.Equal(len(pub.decisions), 1)
	is.Equal(pub.decisions[0].Seat, "W")
	is.Equal(pub.decisions[0].Card, d.Card.String())
	is.Equal(pub.decisions[0].Strategy, "beginner")
	is.Equal(pub.decisions[0].Trump, "♠")
}

func TestSelectAndPlayValidatesTurn(t *testing.T) {
	is := is.New(t)
	sel, err := New(Beginner, testConfig())
	is.NoErr(err)

	g := spadeGame(t)
	_, err = SelectAndPlay(g, deal.North, sel, events.NopPublisher{})
	var pe *game.PlayError
	is.True(errors.As(err, &pe))
	is.Equal(pe.Reason, game.ReasonNotYourTurn)
	is.Equal(g.CardsPlayed(), 0)
}

type fixedSelector struct{ c card.Card }

func (f fixedSelector) SelectCard(*game.Game, deal.Position) (Decision, error) {
	return Decision{Card: f.c, Level: Beginner}, nil
}

func TestSelectAndPlayRejectsIllegalSelection(t *testing.T) {
	is := is.New(t)
	g := spadeGame(t)
	// A selector handing back an opponent's card is a bug, not a legal move.
	_, err := SelectAndPlay(g, deal.West, fixedSelector{c: card.MustParse("SA")},
		events.NopPublisher{})
	is.True(errors.Is(err, game.ErrInvariant))
	is.Equal(g.CardsPlayed(), 0)
}
