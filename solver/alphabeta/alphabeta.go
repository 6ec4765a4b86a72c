// Package alphabeta implements the search strategy: depth-limited minimax
// with alpha-beta pruning over the play state's game tree. The search
// treats all four hands as known. That full-information assumption is a
// deliberate tractability tradeoff, not hidden-information solving; it is
// what makes an exhaustive 13-trick tree feasible at interactive speeds.
package alphabeta

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/JFrunk/bridgeplay/card"
	"github.com/JFrunk/bridgeplay/deal"
	"github.com/JFrunk/bridgeplay/game"
)

const (
	// Infinity exceeds any reachable evaluation (tricks are capped at 13).
	Infinity = float32(1000)
)

var ErrNoLegalPlays = errors.New("no legal plays to search")

// OrderHint supplies a first move to try at a node; searching a strong
// candidate first tightens the alpha-beta window early. The player package
// wires the heuristic strategy in here.
type OrderHint func(*game.Game, deal.Position) (card.Card, bool)

// Solver runs one search per BestCard call. It always works on a private
// copy of the game, so an abandoned search cannot corrupt the caller's
// state. A Solver is not safe for concurrent use.
type Solver struct {
	plies     int
	timeLimit time.Duration
	orderHint OrderHint

	game       *game.Game
	declSide   deal.Side
	tt         *transpositionTable
	totalNodes int
}

// New returns a solver searching to the given depth in plies (individual
// card plays). timeLimit of zero means the depth cap alone bounds the
// search.
func New(plies int, timeLimit time.Duration) *Solver {
	return &Solver{
		plies:     plies,
		timeLimit: timeLimit,
		tt:        newTranspositionTable(),
	}
}

// SetOrderHint installs the move-ordering hint.
func (s *Solver) SetOrderHint(h OrderHint) {
	s.orderHint = h
}

// Plies returns the configured search depth.
func (s *Solver) Plies() int { return s.plies }

// BestCard searches for the strongest card for the seat and returns it
// with its evaluation (declaring side's expected tricks). The hard depth
// cap bounds worst-case latency; an optional wall-clock limit cuts
// iterative deepening short, in which case the deepest completed
// iteration's answer is returned.
func (s *Solver) BestCard(g *game.Game, seat deal.Position) (card.Card, float32, error) {
	if err := g.ValidatePlayRequest(seat); err != nil {
		return card.Card{}, 0, err
	}
	legal, err := g.LegalPlays(seat)
	if err != nil {
		return card.Card{}, 0, err
	}
	if len(legal) == 0 {
		return card.Card{}, 0, ErrNoLegalPlays
	}
	if len(legal) == 1 {
		return legal[0], 0, nil
	}

	s.game = g.Copy()
	s.declSide = g.Contract().Declarer.Side()
	s.tt.reset()
	s.totalNodes = 0

	ctx := context.Background()
	var cancel context.CancelFunc
	if s.timeLimit > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.timeLimit)
		defer cancel()
	}

	tstart := time.Now()
	best := s.orderedPlays(seat, legal)[0]
	var bestValue float32
	for p := 1; p <= s.plies; p++ {
		c, v, err := s.searchRoot(ctx, seat, legal, p)
		if err != nil {
			log.Debug().Int("plies", p).Err(err).Msg("search-cut-short")
			break
		}
		best, bestValue = c, v
	}
	log.Debug().
		Int("plies", s.plies).
		Int("nodes", s.totalNodes).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Str("card", best.String()).
		Msg("alphabeta-solve-done")
	return best, bestValue, nil
}

// searchRoot runs one fixed-depth iteration and returns the best card at
// the root for the seat's side.
func (s *Solver) searchRoot(ctx context.Context, seat deal.Position,
	legal []card.Card, depth int) (card.Card, float32, error) {

	maximizing := seat.Side() == s.declSide
	α, β := -Infinity, Infinity
	var best card.Card
	var bestValue float32
	if maximizing {
		bestValue = -Infinity
	} else {
		bestValue = Infinity
	}

	for _, c := range s.orderedPlays(seat, legal) {
		if err := s.game.PlayCard(seat, c); err != nil {
			return card.Card{}, 0, err
		}
		v, err := s.alphabeta(ctx, depth-1, α, β)
		if uerr := s.game.UnplayLastMove(); uerr != nil {
			return card.Card{}, 0, uerr
		}
		if err != nil {
			return card.Card{}, 0, err
		}
		if maximizing {
			if v > bestValue || best == (card.Card{}) {
				bestValue, best = v, c
			}
			α = max32(α, v)
		} else {
			if v < bestValue || best == (card.Card{}) {
				bestValue, best = v, c
			}
			β = min32(β, v)
		}
	}
	return best, bestValue, nil
}

func (s *Solver) alphabeta(ctx context.Context, depth int, α, β float32) (float32, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}
	s.totalNodes++

	if depth == 0 || s.game.Complete() {
		return evaluate(s.game, s.declSide), nil
	}

	key := s.tt.positionKey(s.game, s.declSide)
	if entry, ok := s.tt.lookup(key, depth); ok {
		switch entry.flag {
		case ttExact:
			return entry.value, nil
		case ttLower:
			α = max32(α, entry.value)
		case ttUpper:
			β = min32(β, entry.value)
		}
		if α >= β {
			return entry.value, nil
		}
	}
	origAlpha, origBeta := α, β

	seat := s.game.NextToPlay()
	legal, err := s.game.LegalPlays(seat)
	if err != nil {
		return 0, err
	}
	maximizing := seat.Side() == s.declSide

	var value float32
	if maximizing {
		value = -Infinity
		for _, c := range s.orderedPlays(seat, legal) {
			if err := s.game.PlayCard(seat, c); err != nil {
				return 0, err
			}
			v, err := s.alphabeta(ctx, depth-1, α, β)
			if uerr := s.game.UnplayLastMove(); uerr != nil {
				return 0, uerr
			}
			if err != nil {
				return 0, err
			}
			value = max32(value, v)
			α = max32(α, value)
			if α >= β {
				break // beta cut-off
			}
		}
	} else {
		value = Infinity
		for _, c := range s.orderedPlays(seat, legal) {
			if err := s.game.PlayCard(seat, c); err != nil {
				return 0, err
			}
			v, err := s.alphabeta(ctx, depth-1, α, β)
			if uerr := s.game.UnplayLastMove(); uerr != nil {
				return 0, uerr
			}
			if err != nil {
				return 0, err
			}
			value = min32(value, v)
			β = min32(β, value)
			if β <= α {
				break // alpha cut-off
			}
		}
	}

	flag := ttExact
	if value <= origAlpha {
		flag = ttUpper
	} else if value >= origBeta {
		flag = ttLower
	}
	s.tt.store(key, value, depth, flag)
	return value, nil
}

// orderedPlays sorts the legal cards for searching: the hint first, then
// descending rank. Trying strong cards first is what makes the pruning
// bite.
func (s *Solver) orderedPlays(seat deal.Position, legal []card.Card) []card.Card {
	ordered := make([]card.Card, len(legal))
	copy(ordered, legal)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Suit != ordered[j].Suit {
			return ordered[i].Suit > ordered[j].Suit
		}
		return ordered[i].Rank > ordered[j].Rank
	})
	if s.orderHint == nil {
		return ordered
	}
	hint, ok := s.orderHint(s.game, seat)
	if !ok {
		return ordered
	}
	for i, c := range ordered {
		if c == hint && i > 0 {
			copy(ordered[1:i+1], ordered[:i])
			ordered[0] = hint
			break
		}
	}
	return ordered
}

func max32(x, y float32) float32 {
	if x < y {
		return y
	}
	return x
}

func min32(x, y float32) float32 {
	if x < y {
		return x
	}
	return y
}
