// Package automatic plays full deals with no human input, pitting one
// difficulty level against another over many random deals. It exists for
// strategy regression and tuning: if a search change drops the declarer
// score distribution, this is where it shows up first.
package automatic

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/JFrunk/bridgeplay/ai/player"
	"github.com/JFrunk/bridgeplay/card"
	"github.com/JFrunk/bridgeplay/config"
	"github.com/JFrunk/bridgeplay/deal"
	"github.com/JFrunk/bridgeplay/events"
	"github.com/JFrunk/bridgeplay/game"
)

// Options selects the matchup: DeclarerLevel plays the declaring side's
// cards, DefenderLevel defends.
type Options struct {
	DeclarerLevel player.Level
	DefenderLevel player.Level
	Deals         int
	Concurrency   int
}

// Summary aggregates a finished run.
type Summary struct {
	Deals         int
	MadeContracts int
	MeanScore     float64 // declarer's side, per deal
	StdDevScore   float64
	FallbackRate  float64 // fraction of expert decisions that fell back
}

func (s Summary) String() string {
	return fmt.Sprintf("%d deals, %d made, score %.1f ± %.1f, fallback %.1f%%",
		s.Deals, s.MadeContracts, s.MeanScore, s.StdDevScore, s.FallbackRate*100)
}

// Runner plays the deals. Each worker builds its own selectors, since
// solvers are not safe for concurrent use.
type Runner struct {
	cfg  *config.Config
	opts Options
}

func NewRunner(cfg *config.Config, opts Options) *Runner {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &Runner{cfg: cfg, opts: opts}
}

// Run plays all the deals, up to Concurrency at a time, and aggregates.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var mu sync.Mutex
	scores := make([]float64, 0, r.opts.Deals)
	made := 0
	decisions, fallbacks := 0, 0

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Concurrency)
	for i := 0; i < r.opts.Deals; i++ {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			declSel, err := player.New(r.opts.DeclarerLevel, r.cfg)
			if err != nil {
				return err
			}
			defSel, err := player.New(r.opts.DefenderLevel, r.cfg)
			if err != nil {
				return err
			}
			res, stats, err := playOneDeal(declSel, defSel)
			if err != nil {
				return err
			}
			mu.Lock()
			scores = append(scores, float64(res.Points))
			if res.Made {
				made++
			}
			decisions += stats.decisions
			fallbacks += stats.fallbacks
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	mean, std := stat.MeanStdDev(scores, nil)
	summary := Summary{
		Deals:         len(scores),
		MadeContracts: made,
		MeanScore:     mean,
		StdDevScore:   std,
	}
	if decisions > 0 {
		summary.FallbackRate = float64(fallbacks) / float64(decisions)
	}
	log.Info().Str("summary", summary.String()).Msg("autoplay-done")
	return summary, nil
}

type dealStats struct {
	decisions int
	fallbacks int
}

// playOneDeal deals, assigns a contract, and plays all 13 tricks with the
// declarer-side selector on declarer's seats and the defender selector on
// the rest.
func playOneDeal(declSel, defSel player.Selector) (*gameResult, dealStats, error) {
	deck := card.NewDeck()
	deck.Shuffle()
	hands := deck.Deal()

	contract := PickContract(hands)
	g, err := game.NewGame(contract, hands, deal.North, deal.Vulnerability{})
	if err != nil {
		return nil, dealStats{}, err
	}

	var stats dealStats
	declSide := contract.Declarer.Side()
	for !g.Complete() {
		seat := g.NextToPlay()
		sel := defSel
		if seat.Side() == declSide {
			sel = declSel
		}
		decision, err := player.SelectAndPlay(g, seat, sel, events.NopPublisher{})
		if err != nil {
			return nil, dealStats{}, err
		}
		stats.decisions++
		if decision.UsedFallback {
			stats.fallbacks++
		}
	}
	return &gameResult{Points: g.Result().Points, Made: g.Result().Made}, stats, nil
}

type gameResult struct {
	Points int
	Made   bool
}

// PickContract is a crude stand-in for the external bidding engine, good
// enough to generate playable self-play positions: the side with more
// high-card strength declares its longest combined suit (or no-trump with
// no 8-card fit), at a level keyed to combined strength.
func PickContract(hands [deal.NumPositions]card.Hand) deal.Contract {
	hcp := map[deal.Side]int{}
	for _, seat := range deal.Positions() {
		hcp[seat.Side()] += hands[seat].HCP()
	}
	side := deal.NorthSouth
	if hcp[deal.EastWest] > hcp[deal.NorthSouth] {
		side = deal.EastWest
	}
	seats := [2]deal.Position{deal.North, deal.South}
	if side == deal.EastWest {
		seats = [2]deal.Position{deal.East, deal.West}
	}

	bestSuit, bestLen := card.Spades, 0
	for s := card.Clubs; s <= card.Spades; s++ {
		n := len(hands[seats[0]].InSuit(s)) + len(hands[seats[1]].InSuit(s))
		if n > bestLen {
			bestSuit, bestLen = s, n
		}
	}
	strain := deal.NoTrump
	if bestLen >= 8 {
		strain = deal.Strain(bestSuit)
	}

	level := 1
	switch combined := hcp[side]; {
	case combined >= 33:
		level = 6
	case combined >= 26:
		level = 4
	case combined >= 23:
		level = 3
	case combined >= 20:
		level = 2
	}

	declarer := seats[0]
	if hands[seats[1]].HCP() > hands[seats[0]].HCP() {
		declarer = seats[1]
	}
	return deal.Contract{Level: level, Strain: strain, Declarer: declarer}
}
