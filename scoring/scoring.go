// Package scoring converts a completed deal into a duplicate-bridge score.
// It is a pure table lookup over (contract, tricks taken, vulnerability);
// the play engine supplies those inputs when the thirteenth trick resolves.
package scoring

import (
	"fmt"

	"github.com/JFrunk/bridgeplay/deal"
)

// Result is the outcome of one played deal. Points are zero-sum: Points is
// from the declaring side's perspective, and ScoreFor negates it for the
// defenders.
type Result struct {
	Contract       deal.Contract
	DeclarerTricks int
	DefenderTricks int
	Made           bool
	Overtricks     int // 0 when set
	Undertricks    int // 0 when made
	Points         int // declaring side's score; defenders score -Points
}

func (r Result) String() string {
	if r.Made {
		return fmt.Sprintf("%s made %d (+%d)", r.Contract, r.DeclarerTricks, r.Points)
	}
	return fmt.Sprintf("%s down %d (%d)", r.Contract, r.Undertricks, r.Points)
}

// ScoreFor returns the signed score from the given side's perspective.
func (r Result) ScoreFor(s deal.Side) int {
	if s == r.Contract.Declarer.Side() {
		return r.Points
	}
	return -r.Points
}

// trickValue is the per-trick score of the strain's second and subsequent
// tricks; no-trump's first trick carries a 10-point premium on top of this.
func trickValue(s deal.Strain) int {
	switch s {
	case deal.StrainClubs, deal.StrainDiamonds:
		return 20
	default:
		return 30
	}
}

func doublingFactor(d deal.Doubling) int {
	switch d {
	case deal.Doubled:
		return 2
	case deal.Redoubled:
		return 4
	}
	return 1
}

// contractTrickScore is the score for exactly the contracted tricks,
// including the doubling multiplier. This is the figure compared against
// the 100-point game threshold.
func contractTrickScore(c deal.Contract) int {
	score := c.Level * trickValue(c.Strain)
	if c.Strain == deal.NoTrump {
		score += 10
	}
	return score * doublingFactor(c.Doubling)
}

func overtrickScore(c deal.Contract, overtricks int, vulnerable bool) int {
	switch c.Doubling {
	case deal.Undoubled:
		return overtricks * trickValue(c.Strain)
	case deal.Doubled:
		if vulnerable {
			return overtricks * 200
		}
		return overtricks * 100
	default: // redoubled
		if vulnerable {
			return overtricks * 400
		}
		return overtricks * 200
	}
}

// undertrickPenalty is the defenders' score for a set contract.
func undertrickPenalty(c deal.Contract, undertricks int, vulnerable bool) int {
	if c.Doubling == deal.Undoubled {
		if vulnerable {
			return undertricks * 100
		}
		return undertricks * 50
	}
	// Doubled: 100/300/500 then 300 per trick non-vulnerable,
	// 200 then 300 per trick vulnerable. Redoubled is twice that.
	penalty := 0
	for i := 1; i <= undertricks; i++ {
		var per int
		switch {
		case vulnerable:
			if i == 1 {
				per = 200
			} else {
				per = 300
			}
		case i == 1:
			per = 100
		case i <= 3:
			per = 200
		default:
			per = 300
		}
		penalty += per
	}
	if c.Doubling == deal.Redoubled {
		penalty *= 2
	}
	return penalty
}

func bonuses(c deal.Contract, vulnerable bool) int {
	bonus := 0
	if contractTrickScore(c) >= 100 {
		if vulnerable {
			bonus += 500
		} else {
			bonus += 300
		}
	} else {
		bonus += 50
	}
	switch c.Level {
	case 6:
		if vulnerable {
			bonus += 750
		} else {
			bonus += 500
		}
	case 7:
		if vulnerable {
			bonus += 1500
		} else {
			bonus += 1000
		}
	}
	// The "insult" bonus for making a doubled or redoubled contract.
	switch c.Doubling {
	case deal.Doubled:
		bonus += 50
	case deal.Redoubled:
		bonus += 100
	}
	return bonus
}

// Score computes the result of a completed deal. declarerTricks is the
// total tricks won by the declaring side; vulnerable refers to the
// declaring side's vulnerability.
func Score(c deal.Contract, declarerTricks int, vulnerable bool) Result {
	r := Result{
		Contract:       c,
		DeclarerTricks: declarerTricks,
		DefenderTricks: 13 - declarerTricks,
	}
	needed := c.TricksNeeded()
	if declarerTricks >= needed {
		r.Made = true
		r.Overtricks = declarerTricks - needed
		r.Points = contractTrickScore(c) +
			overtrickScore(c, r.Overtricks, vulnerable) +
			bonuses(c, vulnerable)
	} else {
		r.Undertricks = needed - declarerTricks
		r.Points = -undertrickPenalty(c, r.Undertricks, vulnerable)
	}
	return r
}
