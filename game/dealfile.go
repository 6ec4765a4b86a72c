package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/JFrunk/bridgeplay/card"
	"github.com/JFrunk/bridgeplay/deal"
)

// DealFile is the on-disk YAML form of a deal, used by the shell and by
// test fixtures. Hands use dotted PBN notation (spades.hearts.diamonds.clubs).
// Either an auction or an explicit contract must be present.
type DealFile struct {
	Dealer     string            `yaml:"dealer"`
	Vulnerable string            `yaml:"vulnerable"` // None, NS, EW, Both
	Hands      map[string]string `yaml:"hands"`
	Auction    string            `yaml:"auction,omitempty"`
	Contract   string            `yaml:"contract,omitempty"`
	HumanSeat  string            `yaml:"human_seat,omitempty"`
}

func parseVulnerability(s string) (deal.Vulnerability, error) {
	switch s {
	case "", "None":
		return deal.Vulnerability{}, nil
	case "NS":
		return deal.Vulnerability{NorthSouth: true}, nil
	case "EW":
		return deal.Vulnerability{EastWest: true}, nil
	case "Both", "All":
		return deal.Vulnerability{NorthSouth: true, EastWest: true}, nil
	}
	return deal.Vulnerability{}, fmt.Errorf("bad vulnerability %q", s)
}

func vulnerabilityString(v deal.Vulnerability) string {
	switch {
	case v.NorthSouth && v.EastWest:
		return "Both"
	case v.NorthSouth:
		return "NS"
	case v.EastWest:
		return "EW"
	}
	return "None"
}

// Game builds a play state from the parsed file.
func (df *DealFile) Game() (*Game, error) {
	dealer, err := deal.ParsePosition(df.Dealer)
	if err != nil {
		return nil, err
	}
	vul, err := parseVulnerability(df.Vulnerable)
	if err != nil {
		return nil, err
	}
	var hands [deal.NumPositions]card.Hand
	for _, seat := range deal.Positions() {
		raw, ok := df.Hands[seat.String()]
		if !ok {
			return nil, fmt.Errorf("deal file missing hand for %s", seat)
		}
		hands[seat], err = card.ParseHand(raw)
		if err != nil {
			return nil, err
		}
	}

	var g *Game
	switch {
	case df.Contract != "":
		contract, err := deal.ParseContract(df.Contract)
		if err != nil {
			return nil, err
		}
		g, err = NewGame(contract, hands, dealer, vul)
		if err != nil {
			return nil, err
		}
	case df.Auction != "":
		auction, err := deal.ParseAuction(dealer, df.Auction)
		if err != nil {
			return nil, err
		}
		g, err = NewGameFromAuction(auction, hands, vul)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("deal file needs an auction or a contract")
	}

	if df.HumanSeat != "" {
		seat, err := deal.ParsePosition(df.HumanSeat)
		if err != nil {
			return nil, err
		}
		g.SetHumanSeat(seat)
	}
	return g, nil
}

// LoadDealFile reads and constructs a game from a YAML deal file.
func LoadDealFile(path string) (*Game, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var df DealFile
	if err := yaml.Unmarshal(raw, &df); err != nil {
		return nil, fmt.Errorf("parsing deal file %s: %w", path, err)
	}
	return df.Game()
}

// SaveDealFile writes the game's deal out as YAML. The original 13-card
// hands are reconstructed from the trick history, so a deal saved mid-play
// loads again; the play so far is not preserved, only the deal.
func SaveDealFile(g *Game, path string) error {
	df := DealFile{
		Dealer:     g.Dealer().String(),
		Vulnerable: vulnerabilityString(g.Vulnerability()),
		Hands:      map[string]string{},
		Contract:   g.Contract().String(),
		HumanSeat:  g.HumanSeat().String(),
	}
	var full [deal.NumPositions]card.Hand
	for _, seat := range deal.Positions() {
		full[seat] = g.Hand(seat).Copy()
	}
	for _, t := range g.Tricks() {
		for _, p := range t.Plays {
			full[p.Seat].Add(p.Card)
		}
	}
	for _, p := range g.CurrentTrick().Plays {
		full[p.Seat].Add(p.Card)
	}
	for _, seat := range deal.Positions() {
		df.Hands[seat.String()] = full[seat].String()
	}
	raw, err := yaml.Marshal(&df)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0644)
}
