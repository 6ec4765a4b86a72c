// Package shell is the interactive front end for playing and analyzing
// deals from a terminal. It drives the same engine surface the API layer
// uses: DisplayInfo for queries, PlayCard for human moves, and the
// strategy layer for AI moves.
package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/JFrunk/bridgeplay/ai/player"
	"github.com/JFrunk/bridgeplay/automatic"
	"github.com/JFrunk/bridgeplay/card"
	"github.com/JFrunk/bridgeplay/config"
	"github.com/JFrunk/bridgeplay/deal"
	"github.com/JFrunk/bridgeplay/events"
	"github.com/JFrunk/bridgeplay/game"
)

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config
	pub events.Publisher

	game      *game.Game
	selectors map[player.Level]player.Selector
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config, pub events.Publisher) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mbridgeplay>\033[0m ",
		HistoryFile:     "/tmp/bridgeplay_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	if pub == nil {
		pub = events.NopPublisher{}
	}
	return &ShellController{
		l:         l,
		cfg:       cfg,
		pub:       pub,
		selectors: map[player.Level]player.Selector{},
	}
}

func (sc *ShellController) selector(level player.Level) (player.Selector, error) {
	if sel, ok := sc.selectors[level]; ok {
		return sel, nil
	}
	sel, err := player.New(level, sc.cfg)
	if err != nil {
		return nil, err
	}
	sc.selectors[level] = sel
	return sel, nil
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "deal - deal a random hand and pick a contract\n")
	io.WriteString(w, "load <path> - load a YAML deal file\n")
	io.WriteString(w, "save <path> - save the current deal\n")
	io.WriteString(w, "show - show the table from the human's point of view\n")
	io.WriteString(w, "legal - list legal plays for the seat on turn\n")
	io.WriteString(w, "play <card> - play a card for the seat on turn (e.g. play SA)\n")
	io.WriteString(w, "ai [level] - let the AI play one card for the seat on turn\n")
	io.WriteString(w, "auto [level] - let the AI play out the rest of the deal\n")
	io.WriteString(w, "score - show the result of a completed deal\n")
	io.WriteString(w, "exit - leave\n")
}

// Loop reads and executes commands until exit/EOF.
func (sc *ShellController) Loop() {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields, err := shellquote.Split(line)
		if err != nil {
			showMessage("bad command line: "+err.Error(), sc.l.Stderr())
			continue
		}
		if fields[0] == "exit" || fields[0] == "quit" {
			break
		}
		if err := sc.execute(fields[0], fields[1:]); err != nil {
			showMessage("error: "+err.Error(), sc.l.Stderr())
		}
	}
	log.Debug().Msg("exiting shell loop")
}

func (sc *ShellController) execute(cmd string, args []string) error {
	switch cmd {
	case "help":
		usage(sc.l.Stderr())
		return nil
	case "deal":
		return sc.dealRandom()
	case "load":
		if len(args) != 1 {
			return fmt.Errorf("load needs a file path")
		}
		g, err := game.LoadDealFile(args[0])
		if err != nil {
			return err
		}
		sc.game = g
		sc.showState()
		return nil
	case "save":
		if len(args) != 1 {
			return fmt.Errorf("save needs a file path")
		}
		if sc.game == nil {
			return fmt.Errorf("no deal in progress")
		}
		return game.SaveDealFile(sc.game, args[0])
	case "show":
		if sc.game == nil {
			return fmt.Errorf("no deal in progress; try deal or load")
		}
		sc.showState()
		return nil
	case "legal":
		return sc.showLegal()
	case "play":
		if len(args) != 1 {
			return fmt.Errorf("play needs a card, e.g. play SA")
		}
		return sc.playHuman(args[0])
	case "ai":
		return sc.playAI(args, false)
	case "auto":
		return sc.playAI(args, true)
	case "score":
		return sc.showScore()
	}
	return fmt.Errorf("unknown command %q; try help", cmd)
}

func (sc *ShellController) dealRandom() error {
	deck := card.NewDeck()
	deck.Shuffle()
	hands := deck.Deal()
	contract := automatic.PickContract(hands)
	g, err := game.NewGame(contract, hands, deal.North, deal.Vulnerability{})
	if err != nil {
		return err
	}
	humanSeat, err := deal.ParsePosition(sc.cfg.HumanSeat)
	if err == nil {
		g.SetHumanSeat(humanSeat)
	}
	sc.game = g
	sc.showState()
	return nil
}

func (sc *ShellController) showState() {
	info := sc.game.DisplayInfo()
	out := sc.l.Stderr()
	showMessage(fmt.Sprintf("contract: %s   tricks NS %d / EW %d",
		info.Contract, info.TricksNS, info.TricksEW), out)
	for _, seat := range []string{"N", "E", "S", "W"} {
		if h, ok := info.VisibleHands[seat]; ok {
			showMessage(fmt.Sprintf("  %s: %s", seat, h), out)
		} else {
			showMessage(fmt.Sprintf("  %s: (hidden, %d cards)", seat,
				len(sc.mustHand(seat))), out)
		}
	}
	if len(info.CurrentTrick) > 0 {
		showMessage("current trick: "+strings.Join(info.CurrentTrick, " "), out)
	}
	if info.IsComplete {
		showMessage("deal complete; try score", out)
		return
	}
	turn := info.NextToPlay
	if info.IsHumanTurn {
		showMessage(fmt.Sprintf("your turn (%s)", turn), out)
	} else {
		showMessage(fmt.Sprintf("%s to play (ai)", turn), out)
	}
}

func (sc *ShellController) mustHand(seat string) card.Hand {
	p, err := deal.ParsePosition(seat)
	if err != nil {
		return nil
	}
	return sc.game.Hand(p)
}

func (sc *ShellController) showLegal() error {
	if sc.game == nil {
		return fmt.Errorf("no deal in progress")
	}
	legal, err := sc.game.LegalPlays(sc.game.NextToPlay())
	if err != nil {
		return err
	}
	strs := make([]string, len(legal))
	for i, c := range legal {
		strs[i] = c.String()
	}
	showMessage(strings.Join(strs, " "), sc.l.Stderr())
	return nil
}

func (sc *ShellController) playHuman(cardStr string) error {
	if sc.game == nil {
		return fmt.Errorf("no deal in progress")
	}
	c, err := card.Parse(cardStr)
	if err != nil {
		return err
	}
	seat := sc.game.NextToPlay()
	if !sc.game.IsHumanTurn() {
		return fmt.Errorf("%s is an ai seat; use ai to advance", seat)
	}
	if err := sc.game.PlayCard(seat, c); err != nil {
		return err
	}
	sc.showState()
	return nil
}

func (sc *ShellController) playAI(args []string, toCompletion bool) error {
	if sc.game == nil {
		return fmt.Errorf("no deal in progress")
	}
	level := player.Level(sc.cfg.Difficulty)
	if len(args) > 0 {
		var err error
		level, err = player.ParseLevel(args[0])
		if err != nil {
			return err
		}
	}
	sel, err := sc.selector(level)
	if err != nil {
		return err
	}
	for !sc.game.Complete() {
		seat := sc.game.NextToPlay()
		decision, err := player.SelectAndPlay(sc.game, seat, sel, sc.pub)
		if err != nil {
			return err
		}
		showMessage(fmt.Sprintf("%s plays %s (%s, %dms)",
			seat, decision.Card, decision.Level, decision.SolveTime.Milliseconds()),
			sc.l.Stderr())
		if !toCompletion {
			break
		}
	}
	sc.showState()
	return nil
}

func (sc *ShellController) showScore() error {
	if sc.game == nil {
		return fmt.Errorf("no deal in progress")
	}
	res := sc.game.Result()
	if res == nil {
		return fmt.Errorf("the deal is not complete yet")
	}
	out := sc.l.Stderr()
	showMessage(res.String(), out)
	showMessage(fmt.Sprintf("NS %+d / EW %+d",
		res.ScoreFor(deal.NorthSouth), res.ScoreFor(deal.EastWest)), out)
	return nil
}

// RunShell is the binary entry point.
func RunShell(cfg *config.Config, pub events.Publisher) {
	sc := NewShellController(cfg, pub)
	usage(sc.l.Stderr())
	sc.Loop()
}
