// Package game holds the authoritative state of one deal in progress and
// the engine that mutates it: legal-play computation, card application,
// trick resolution, and completion scoring. A Game is owned by exactly one
// caller at a time; nothing in this package locks, and every operation runs
// synchronously to completion.
package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/JFrunk/bridgeplay/card"
	"github.com/JFrunk/bridgeplay/deal"
	"github.com/JFrunk/bridgeplay/scoring"
)

// NumTricks is the number of tricks in a complete deal.
const NumTricks = 13

// Game is the play state of a single deal plus the only code allowed to
// mutate it. It is created once per deal, right after the external bidding
// collaborator finalizes a contract, and stays readable after the
// thirteenth trick for scoring and review.
type Game struct {
	contract  deal.Contract
	dealer    deal.Position
	vul       deal.Vulnerability
	humanSeat deal.Position

	hands           [deal.NumPositions]card.Hand
	tricks          []Trick
	current         Trick
	nextToPlay      deal.Position
	openingLeadMade bool
	complete        bool
	result          *scoring.Result

	stack []playBackup
}

// NewGame constructs the play state for a freshly finalized contract. The
// hands are indexed by seat and must partition the 52 cards; the opening
// lead belongs to declarer's left-hand opponent. The human seat defaults
// to South.
func NewGame(contract deal.Contract, hands [deal.NumPositions]card.Hand,
	dealer deal.Position, vul deal.Vulnerability) (*Game, error) {

	if contract.Level < 1 || contract.Level > 7 {
		return nil, fmt.Errorf("%w: contract level %d", ErrInvariant, contract.Level)
	}
	seen := make(map[card.Card]deal.Position, card.DeckSize)
	for _, seat := range deal.Positions() {
		if len(hands[seat]) != card.HandSize {
			return nil, fmt.Errorf("%w: %s holds %d cards", ErrInvariant, seat, len(hands[seat]))
		}
		for _, c := range hands[seat] {
			if prev, dup := seen[c]; dup {
				return nil, fmt.Errorf("%w: %s dealt to both %s and %s", ErrInvariant, c, prev, seat)
			}
			seen[c] = seat
		}
	}

	g := &Game{
		contract:   contract,
		dealer:     dealer,
		vul:        vul,
		humanSeat:  deal.South,
		nextToPlay: contract.OpeningLeader(),
	}
	for _, seat := range deal.Positions() {
		g.hands[seat] = hands[seat].Copy()
	}
	log.Debug().Str("contract", contract.String()).
		Str("opening-leader", g.nextToPlay.String()).
		Msg("new-game")
	return g, nil
}

// NewGameFromAuction derives the contract from the auction and builds the
// play state. It fails if the auction was passed out.
func NewGameFromAuction(auction deal.Auction, hands [deal.NumPositions]card.Hand,
	vul deal.Vulnerability) (*Game, error) {

	contract, err := auction.Contract()
	if err != nil {
		return nil, err
	}
	return NewGame(contract, hands, auction.Dealer, vul)
}

// SetHumanSeat records which seat the human occupies. It affects only
// visibility and control, never legality.
func (g *Game) SetHumanSeat(seat deal.Position) {
	g.humanSeat = seat
}

func (g *Game) Contract() deal.Contract           { return g.contract }
func (g *Game) Dealer() deal.Position             { return g.dealer }
func (g *Game) Vulnerability() deal.Vulnerability { return g.vul }
func (g *Game) HumanSeat() deal.Position          { return g.humanSeat }
func (g *Game) NextToPlay() deal.Position         { return g.nextToPlay }
func (g *Game) OpeningLeadMade() bool             { return g.openingLeadMade }
func (g *Game) Complete() bool                    { return g.complete }

// Hand exposes a seat's remaining cards. Callers must not mutate it.
func (g *Game) Hand(seat deal.Position) card.Hand { return g.hands[seat] }

// CurrentTrick returns a copy of the trick in progress.
func (g *Game) CurrentTrick() Trick { return g.current.Copy() }

// Tricks returns the completed trick history. Callers must not mutate it.
func (g *Game) Tricks() []Trick { return g.tricks }

// Result returns the contract result, or nil while play is in progress.
func (g *Game) Result() *scoring.Result { return g.result }

// TricksWonBy counts completed tricks credited to a partnership.
func (g *Game) TricksWonBy(side deal.Side) int {
	n := 0
	for i := range g.tricks {
		if g.tricks[i].WonBy.Side() == side {
			n++
		}
	}
	return n
}

// LegalPlays computes the set of cards the seat may legally play right
// now: any held card on a lead, cards of the led suit if the seat can
// follow, and anything (trumps included) when void. Calling it for a seat
// with no cards before completion is an upstream bug and returns
// ErrInvariant.
func (g *Game) LegalPlays(seat deal.Position) ([]card.Card, error) {
	hand := g.hands[seat]
	if len(hand) == 0 {
		if g.complete {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s has no cards but play is not complete", ErrInvariant, seat)
	}
	led, ok := g.current.LedSuit()
	if !ok {
		return hand.Copy(), nil
	}
	if follows := hand.InSuit(led); len(follows) > 0 {
		return follows, nil
	}
	return hand.Copy(), nil
}

// ValidatePlayRequest checks turn order and completion without judging the
// legality of any particular card.
func (g *Game) ValidatePlayRequest(seat deal.Position) error {
	if g.complete {
		return &PlayError{Reason: ReasonGameComplete, Seat: seat}
	}
	if seat != g.nextToPlay {
		return &PlayError{Reason: ReasonNotYourTurn, Seat: seat}
	}
	return nil
}

// PlayCard applies one card to the state. Rejections leave the state
// exactly as it was; there is no partial trick mutation. When the fourth
// card of a trick lands, the trick is resolved, archived, and its winner
// leads next; when the thirteenth trick resolves, the game is marked
// complete and the contract result is computed.
func (g *Game) PlayCard(seat deal.Position, c card.Card) error {
	if err := g.ValidatePlayRequest(seat); err != nil {
		return err
	}
	if !g.hands[seat].Has(c) {
		return &PlayError{Reason: ReasonCardNotHeld, Seat: seat, Card: c}
	}
	if led, ok := g.current.LedSuit(); ok {
		if c.Suit != led && g.hands[seat].HasSuit(led) {
			return &PlayError{Reason: ReasonMustFollowSuit, Seat: seat, Card: c}
		}
	}

	g.pushBackup(seat, c)

	g.hands[seat].Remove(c)
	g.current.Plays = append(g.current.Plays, Play{Seat: seat, Card: c})
	g.openingLeadMade = true

	if g.current.Complete() {
		winner := g.current.Winner(g.contract.Strain)
		g.current.WonBy = winner
		g.tricks = append(g.tricks, g.current)
		g.current = Trick{}
		g.nextToPlay = winner
	} else {
		g.nextToPlay = seat.Next()
	}

	if len(g.tricks) == NumTricks {
		g.complete = true
		declSide := g.contract.Declarer.Side()
		res := scoring.Score(g.contract, g.TricksWonBy(declSide), g.vul.IsVulnerable(declSide))
		g.result = &res
		log.Debug().Str("result", res.String()).Msg("play-complete")
	}
	return nil
}

// CardsPlayed counts every card already applied, including those in the
// trick in progress.
func (g *Game) CardsPlayed() int {
	return len(g.tricks)*TrickSize + len(g.current.Plays)
}
