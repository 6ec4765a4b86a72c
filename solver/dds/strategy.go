package dds

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/JFrunk/bridgeplay/card"
	"github.com/JFrunk/bridgeplay/deal"
	"github.com/JFrunk/bridgeplay/game"
	"github.com/JFrunk/bridgeplay/solver/alphabeta"
)

// Selection is the outcome of an expert-level decision. UsedFallback and
// SolveTime feed the analytics event stream.
type Selection struct {
	Card         card.Card
	UsedFallback bool
	SolveTime    time.Duration
}

// Strategy is the guarded oracle. Engine may be nil (no solver installed),
// in which case every decision takes the fallback path.
type Strategy struct {
	engine   Engine
	fallback *alphabeta.Solver
	timeout  time.Duration
}

// NewStrategy wraps an engine with the always-available search fallback.
func NewStrategy(engine Engine, fallback *alphabeta.Solver, timeout time.Duration) *Strategy {
	return &Strategy{engine: engine, fallback: fallback, timeout: timeout}
}

// SelectCard picks the optimal card via the external solver when it
// cooperates, and via deep alpha-beta when it does not. Solver failure is
// recovered here, one layer below the caller: it is logged and recorded,
// never returned. The only errors that escape are invariant violations
// from the game itself.
func (s *Strategy) SelectCard(g *game.Game, seat deal.Position) (Selection, error) {
	legal, err := g.LegalPlays(seat)
	if err != nil {
		return Selection{}, err
	}
	start := time.Now()
	if len(legal) == 1 {
		return Selection{Card: legal[0], SolveTime: time.Since(start)}, nil
	}

	if s.engine != nil {
		c, err := s.solveGuarded(g, seat)
		if err == nil && lo.Contains(legal, c) {
			return Selection{Card: c, SolveTime: time.Since(start)}, nil
		}
		if err == nil {
			err = fmt.Errorf("solver returned illegal card %s", c)
		}
		log.Err(err).Str("seat", seat.String()).Msg("dds-failed-using-fallback")
	}

	c, _, err := s.fallback.BestCard(g, seat)
	if err != nil {
		return Selection{}, err
	}
	return Selection{Card: c, UsedFallback: true, SolveTime: time.Since(start)}, nil
}

// solveGuarded runs one engine call behind every guard we have: a
// deadline, and a recover for custom in-process engines that panic. The
// engine only ever sees a snapshot, so no failure can touch the live
// game.
func (s *Strategy) solveGuarded(g *game.Game, seat deal.Position) (c card.Card, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dds engine panic: %v", r)
		}
	}()
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	resp, err := s.engine.Solve(ctx, buildRequest(g, seat))
	if err != nil {
		return card.Card{}, err
	}
	return card.Parse(resp.Card)
}
