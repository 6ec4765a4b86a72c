package game

import (
	"github.com/JFrunk/bridgeplay/deal"
	"github.com/JFrunk/bridgeplay/scoring"
)

// DisplayInfo is the read-only projection of the play state handed to the
// API/session layer. Hands are included only for the seats the human is
// entitled to see.
type DisplayInfo struct {
	Contract     string            `json:"contract"`
	Declarer     string            `json:"declarer"`
	NextToPlay   string            `json:"next_to_play"`
	Role         string            `json:"role"`
	IsHumanTurn  bool              `json:"is_human_turn"`
	VisibleHands map[string]string `json:"visible_hands"`
	Controllable []string          `json:"controllable_positions"`
	CurrentTrick []string          `json:"current_trick"`
	TrickHistory []TrickSummary    `json:"trick_history"`
	TricksNS     int               `json:"tricks_ns"`
	TricksEW     int               `json:"tricks_ew"`
	IsComplete   bool              `json:"is_complete"`
	Result       *scoring.Result   `json:"contract_result,omitempty"`
}

// TrickSummary is one completed trick in display form.
type TrickSummary struct {
	Leader string   `json:"leader"`
	Cards  []string `json:"cards"`
	WonBy  string   `json:"won_by"`
}

// DisplayInfo assembles the full view for the session layer. It never
// exposes a hand the visibility rules keep face down.
func (g *Game) DisplayInfo() DisplayInfo {
	info := DisplayInfo{
		Contract:     g.contract.String(),
		Declarer:     g.contract.Declarer.String(),
		NextToPlay:   g.nextToPlay.String(),
		Role:         g.HumanRole().String(),
		IsHumanTurn:  g.IsHumanTurn(),
		VisibleHands: map[string]string{},
		TricksNS:     g.TricksWonBy(deal.NorthSouth),
		TricksEW:     g.TricksWonBy(deal.EastWest),
		IsComplete:   g.complete,
		Result:       g.result,
	}
	for _, seat := range g.VisibleHands() {
		info.VisibleHands[seat.String()] = g.hands[seat].String()
	}
	for _, seat := range g.ControllableSeats() {
		info.Controllable = append(info.Controllable, seat.String())
	}
	for _, p := range g.current.Plays {
		info.CurrentTrick = append(info.CurrentTrick, p.Seat.String()+":"+p.Card.String())
	}
	for i := range g.tricks {
		t := &g.tricks[i]
		leader, _ := t.Leader()
		ts := TrickSummary{Leader: leader.String(), WonBy: t.WonBy.String()}
		for _, p := range t.Plays {
			ts.Cards = append(ts.Cards, p.Card.String())
		}
		info.TrickHistory = append(info.TrickHistory, ts)
	}
	return info
}
