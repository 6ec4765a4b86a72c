package deal

import (
	"fmt"
	"strings"

	"github.com/JFrunk/bridgeplay/card"
)

// Strain is the denomination of a contract: one of the four suits, or
// no-trump. The numeric order (clubs lowest, no-trump highest) matches the
// bidding ladder.
type Strain uint8

const (
	StrainClubs Strain = iota
	StrainDiamonds
	StrainHearts
	StrainSpades
	NoTrump
)

func (s Strain) String() string {
	if s == NoTrump {
		return "NT"
	}
	return card.Suit(s).String()
}

// TrumpSuit returns the trump suit and true, or false for no-trump.
func (s Strain) TrumpSuit() (card.Suit, bool) {
	if s == NoTrump {
		return 0, false
	}
	return card.Suit(s), true
}

// ParseStrain reads "C"/"D"/"H"/"S"/"N"/"NT" (or suit symbols).
func ParseStrain(s string) (Strain, error) {
	switch strings.ToUpper(s) {
	case "C", "♣":
		return StrainClubs, nil
	case "D", "♦":
		return StrainDiamonds, nil
	case "H", "♥":
		return StrainHearts, nil
	case "S", "♠":
		return StrainSpades, nil
	case "N", "NT":
		return NoTrump, nil
	}
	return 0, fmt.Errorf("bad strain %q", s)
}

// Doubling is the doubling state of a contract.
type Doubling uint8

const (
	Undoubled Doubling = iota
	Doubled
	Redoubled
)

func (d Doubling) String() string {
	switch d {
	case Doubled:
		return "X"
	case Redoubled:
		return "XX"
	}
	return ""
}

// Contract is the finalized result of the auction.
type Contract struct {
	Level    int // 1..7
	Strain   Strain
	Declarer Position
	Doubling Doubling
}

func (c Contract) String() string {
	return fmt.Sprintf("%d%s%s by %s", c.Level, c.Strain, c.Doubling, c.Declarer)
}

// ParseContract reads the notation produced by Contract.String, e.g.
// "4♠ by S", "3NT by W", "4SX by N", "1♥XX by E".
func ParseContract(s string) (Contract, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 || fields[1] != "by" {
		return Contract{}, fmt.Errorf("bad contract %q", s)
	}
	declarer, err := ParsePosition(fields[2])
	if err != nil {
		return Contract{}, fmt.Errorf("bad contract %q: %w", s, err)
	}
	bid := fields[0]
	if len(bid) < 2 {
		return Contract{}, fmt.Errorf("bad contract %q", s)
	}
	level := int(bid[0] - '0')
	if level < 1 || level > 7 {
		return Contract{}, fmt.Errorf("bad contract %q: level out of range", s)
	}
	bid = bid[1:]
	doubling := Undoubled
	if strings.HasSuffix(bid, "XX") {
		doubling = Redoubled
		bid = strings.TrimSuffix(bid, "XX")
	} else if strings.HasSuffix(bid, "X") {
		doubling = Doubled
		bid = strings.TrimSuffix(bid, "X")
	}
	strain, err := ParseStrain(bid)
	if err != nil {
		return Contract{}, fmt.Errorf("bad contract %q: %w", s, err)
	}
	return Contract{Level: level, Strain: strain, Declarer: declarer, Doubling: doubling}, nil
}

// TricksNeeded is the number of tricks declarer's side must win.
func (c Contract) TricksNeeded() int {
	return 6 + c.Level
}

// Trump returns the trump suit, if any.
func (c Contract) Trump() (card.Suit, bool) {
	return c.Strain.TrumpSuit()
}

// OpeningLeader is the seat that leads to the first trick: declarer's
// left-hand opponent.
func (c Contract) OpeningLeader() Position {
	return c.Declarer.Next()
}

// Dummy is declarer's partner.
func (c Contract) Dummy() Position {
	return c.Declarer.Partner()
}

// Role is a seat's role relative to a contract. It is derived, never stored.
type Role uint8

const (
	RoleDeclarer Role = iota
	RoleDummy
	RoleDefender
)

func (r Role) String() string {
	switch r {
	case RoleDeclarer:
		return "declarer"
	case RoleDummy:
		return "dummy"
	}
	return "defender"
}

// RoleOf computes the role of a seat under this contract.
func (c Contract) RoleOf(p Position) Role {
	switch p {
	case c.Declarer:
		return RoleDeclarer
	case c.Declarer.Partner():
		return RoleDummy
	}
	return RoleDefender
}
