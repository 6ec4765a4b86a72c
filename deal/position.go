// Package deal holds the table-level vocabulary shared by the play engine
// and the scoring module: seats, partnerships, strains, contracts, and the
// slice of the auction needed to determine declarer and doubling. The
// bidding engine itself lives outside this repository; it hands us a
// finalized Auction or Contract.
package deal

import "fmt"

// Position is a seat at the table. Play proceeds clockwise N, E, S, W.
type Position uint8

const (
	North Position = iota
	East
	South
	West
)

const NumPositions = 4

var positionNames = []string{"N", "E", "S", "W"}

func (p Position) String() string {
	if p >= NumPositions {
		return "?"
	}
	return positionNames[p]
}

// Next returns the seat to the left, i.e. the next to act.
func (p Position) Next() Position {
	return (p + 1) % NumPositions
}

// Partner returns the seat across the table.
func (p Position) Partner() Position {
	return (p + 2) % NumPositions
}

// Side returns the partnership the seat belongs to.
func (p Position) Side() Side {
	if p == North || p == South {
		return NorthSouth
	}
	return EastWest
}

// ParsePosition reads a one-letter seat name (case-insensitive).
func ParsePosition(s string) (Position, error) {
	switch s {
	case "N", "n":
		return North, nil
	case "E", "e":
		return East, nil
	case "S", "s":
		return South, nil
	case "W", "w":
		return West, nil
	}
	return 0, fmt.Errorf("bad position %q", s)
}

// Positions lists the four seats in clockwise order from North.
func Positions() []Position {
	return []Position{North, East, South, West}
}

// Side is one of the two partnerships.
type Side uint8

const (
	NorthSouth Side = iota
	EastWest
)

func (s Side) String() string {
	if s == NorthSouth {
		return "NS"
	}
	return "EW"
}

// Opponent returns the other partnership.
func (s Side) Opponent() Side {
	return 1 - s
}

// Vulnerability records which partnerships are vulnerable for the deal.
type Vulnerability struct {
	NorthSouth bool
	EastWest   bool
}

// IsVulnerable reports whether the given side is vulnerable.
func (v Vulnerability) IsVulnerable(s Side) bool {
	if s == NorthSouth {
		return v.NorthSouth
	}
	return v.EastWest
}
