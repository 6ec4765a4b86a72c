package game

import (
	"errors"
	"fmt"

	"github.com/JFrunk/bridgeplay/card"
	"github.com/JFrunk/bridgeplay/deal"
)

// ErrInvariant marks conditions that can only arise from a bug in the
// caller or in state construction (for example asking an empty hand to
// play). These are not recoverable play errors; callers should treat them
// as fatal.
var ErrInvariant = errors.New("play state invariant violated")

// Reason identifies the specific rule a rejected play violated, so a UI
// can explain the rejection.
type Reason uint8

const (
	ReasonNotYourTurn Reason = iota
	ReasonGameComplete
	ReasonCardNotHeld
	ReasonMustFollowSuit
)

func (r Reason) String() string {
	switch r {
	case ReasonNotYourTurn:
		return "not your turn"
	case ReasonGameComplete:
		return "the play is already complete"
	case ReasonCardNotHeld:
		return "card not in hand"
	case ReasonMustFollowSuit:
		return "must follow the led suit"
	}
	return "illegal play"
}

// PlayError is a rejected play request. The game state is unchanged
// whenever a PlayError is returned.
type PlayError struct {
	Reason Reason
	Seat   deal.Position
	Card   card.Card
}

func (e *PlayError) Error() string {
	return fmt.Sprintf("illegal play by %s: %s", e.Seat, e.Reason)
}

// IsPlayError reports whether err is a play rejection and, if so, returns it.
func IsPlayError(err error) (*PlayError, bool) {
	var pe *PlayError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
