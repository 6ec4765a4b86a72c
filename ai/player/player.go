// Package player is the AI strategy layer: one interface, three
// implementations of increasing strength, selected by difficulty level.
// Every selector guarantees its card is legal for the seat; worst case for
// any internal failure is a weaker move, never an error surfaced as a
// crash.
package player

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/JFrunk/bridgeplay/card"
	"github.com/JFrunk/bridgeplay/config"
	"github.com/JFrunk/bridgeplay/deal"
	"github.com/JFrunk/bridgeplay/events"
	"github.com/JFrunk/bridgeplay/game"
	"github.com/JFrunk/bridgeplay/solver/alphabeta"
	"github.com/JFrunk/bridgeplay/solver/dds"
)

// Level is a recognized difficulty setting.
type Level string

const (
	Beginner     Level = "beginner"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
	Expert       Level = "expert"
)

// ParseLevel validates a difficulty string.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case Beginner, Intermediate, Advanced, Expert:
		return Level(s), nil
	}
	return "", fmt.Errorf("unrecognized difficulty %q", s)
}

// Decision is one completed card selection with the metadata the
// analytics collaborator wants.
type Decision struct {
	Card         card.Card
	Level        Level
	UsedFallback bool
	SolveTime    time.Duration
}

// Selector picks a card for a seat. The returned card is always a member
// of the seat's legal plays; errors indicate invariant violations, not
// strategy failures.
type Selector interface {
	SelectCard(g *game.Game, seat deal.Position) (Decision, error)
}

// New builds the selector for a difficulty level using the configured
// depths and oracle settings.
func New(level Level, cfg *config.Config) (Selector, error) {
	timeLimit := time.Duration(cfg.AlphaBetaTimeLimitMs) * time.Millisecond
	switch level {
	case Beginner:
		return &heuristicSelector{}, nil
	case Intermediate:
		return newSearchSelector(level, cfg.IntermediateDepth, timeLimit), nil
	case Advanced:
		return newSearchSelector(level, cfg.AdvancedDepth, timeLimit), nil
	case Expert:
		var engine dds.Engine
		if cfg.DDSPath != "" {
			engine = &dds.SubprocessEngine{Path: cfg.DDSPath}
		}
		fallback := alphabeta.New(cfg.FallbackDepth, timeLimit)
		fallback.SetOrderHint(recommendHint)
		strategy := dds.NewStrategy(engine, fallback,
			time.Duration(cfg.DDSTimeoutMs)*time.Millisecond)
		return &oracleSelector{strategy: strategy}, nil
	}
	return nil, fmt.Errorf("unrecognized difficulty %q", level)
}

func recommendHint(g *game.Game, seat deal.Position) (card.Card, bool) {
	c, err := Recommend(g, seat)
	if err != nil {
		return card.Card{}, false
	}
	return c, true
}

type heuristicSelector struct{}

func (h *heuristicSelector) SelectCard(g *game.Game, seat deal.Position) (Decision, error) {
	start := time.Now()
	c, err := Recommend(g, seat)
	if err != nil {
		return Decision{}, err
	}
	return Decision{Card: c, Level: Beginner, SolveTime: time.Since(start)}, nil
}

type searchSelector struct {
	level  Level
	solver *alphabeta.Solver
}

func newSearchSelector(level Level, plies int, timeLimit time.Duration) *searchSelector {
	solver := alphabeta.New(plies, timeLimit)
	solver.SetOrderHint(recommendHint)
	return &searchSelector{level: level, solver: solver}
}

func (s *searchSelector) SelectCard(g *game.Game, seat deal.Position) (Decision, error) {
	start := time.Now()
	c, _, err := s.solver.BestCard(g, seat)
	if err != nil {
		return Decision{}, err
	}
	return Decision{Card: c, Level: s.level, SolveTime: time.Since(start)}, nil
}

type oracleSelector struct {
	strategy *dds.Strategy
}

func (o *oracleSelector) SelectCard(g *game.Game, seat deal.Position) (Decision, error) {
	sel, err := o.strategy.SelectCard(g, seat)
	if err != nil {
		return Decision{}, err
	}
	return Decision{
		Card:         sel.Card,
		Level:        Expert,
		UsedFallback: sel.UsedFallback,
		SolveTime:    sel.SolveTime,
	}, nil
}

// SelectAndPlay runs one full AI turn: pick a card at the given level,
// apply it to the game, and emit the decision event. The event publisher
// is fire-and-forget; pass events.NopPublisher{} when analytics is off.
func SelectAndPlay(g *game.Game, seat deal.Position, sel Selector, pub events.Publisher) (Decision, error) {
	if err := g.ValidatePlayRequest(seat); err != nil {
		return Decision{}, err
	}
	decision, err := sel.SelectCard(g, seat)
	if err != nil {
		return Decision{}, err
	}
	if err := g.PlayCard(seat, decision.Card); err != nil {
		// A selector returning an illegal card is a bug in this package.
		return Decision{}, fmt.Errorf("%w: %s selected illegal %s: %v",
			game.ErrInvariant, seat, decision.Card, err)
	}
	trump := "NT"
	if t, ok := g.Contract().Trump(); ok {
		trump = t.String()
	}
	pub.Publish(events.Decision{
		Seat:         seat.String(),
		Card:         decision.Card.String(),
		Strategy:     string(decision.Level),
		SolveTimeMs:  decision.SolveTime.Milliseconds(),
		UsedFallback: decision.UsedFallback,
		Contract:     g.Contract().String(),
		Trump:        trump,
	})
	log.Debug().
		Str("seat", seat.String()).
		Str("card", decision.Card.String()).
		Str("level", string(decision.Level)).
		Bool("used-fallback", decision.UsedFallback).
		Int64("solve-time-ms", decision.SolveTime.Milliseconds()).
		Msg("ai-played")
	return decision, nil
}
