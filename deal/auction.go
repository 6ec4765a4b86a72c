package deal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// CallType distinguishes the four kinds of calls in an auction.
type CallType uint8

const (
	CallPass CallType = iota
	CallBid
	CallDouble
	CallRedouble
)

// Call is one entry in the auction. Level and Strain are meaningful only
// for CallBid.
type Call struct {
	Type   CallType
	Level  int
	Strain Strain
}

func (c Call) String() string {
	switch c.Type {
	case CallPass:
		return "P"
	case CallDouble:
		return "X"
	case CallRedouble:
		return "XX"
	}
	return strconv.Itoa(c.Level) + c.Strain.String()
}

// ParseCall reads "P"/"Pass", "X", "XX", or a bid like "1S", "3NT", "4♠".
func ParseCall(s string) (Call, error) {
	switch strings.ToUpper(s) {
	case "P", "PASS":
		return Call{Type: CallPass}, nil
	case "X", "DBL":
		return Call{Type: CallDouble}, nil
	case "XX", "RDBL":
		return Call{Type: CallRedouble}, nil
	}
	if len(s) < 2 {
		return Call{}, fmt.Errorf("bad call %q", s)
	}
	level := int(s[0] - '0')
	if level < 1 || level > 7 {
		return Call{}, fmt.Errorf("bad call %q: level out of range", s)
	}
	strain, err := ParseStrain(s[1:])
	if err != nil {
		return Call{}, fmt.Errorf("bad call %q: %w", s, err)
	}
	return Call{Type: CallBid, Level: level, Strain: strain}, nil
}

// Auction is the sequence of calls starting with the dealer. The bidding
// engine that produces it is external; we only need enough of it to derive
// the contract.
type Auction struct {
	Dealer Position
	Calls  []Call
}

// ParseAuction reads a dash- or space-separated call list, e.g.
// "1S-P-4S-X-P-P-P".
func ParseAuction(dealer Position, s string) (Auction, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == ' ' })
	a := Auction{Dealer: dealer}
	for _, f := range fields {
		call, err := ParseCall(f)
		if err != nil {
			return Auction{}, err
		}
		a.Calls = append(a.Calls, call)
	}
	return a, nil
}

// caller returns the seat that made the i-th call.
func (a Auction) caller(i int) Position {
	return Position((int(a.Dealer) + i) % NumPositions)
}

var ErrPassedOut = errors.New("auction passed out; no contract")

// Contract derives the final contract from a completed auction: the last
// bid fixes level and strain, any trailing double or redouble fixes the
// doubling state, and the declarer is the first member of the winning
// partnership to have bid the final strain. Doubles and redoubles never
// count toward declarer identification; only actual bids of the strain do.
func (a Auction) Contract() (Contract, error) {
	lastBid := -1
	doubling := Undoubled
	for i, c := range a.Calls {
		switch c.Type {
		case CallBid:
			lastBid = i
			doubling = Undoubled
		case CallDouble:
			doubling = Doubled
		case CallRedouble:
			doubling = Redoubled
		}
	}
	if lastBid == -1 {
		return Contract{}, ErrPassedOut
	}
	final := a.Calls[lastBid]
	winningSide := a.caller(lastBid).Side()

	declarer := a.caller(lastBid)
	for i, c := range a.Calls {
		if c.Type != CallBid {
			continue
		}
		if c.Strain == final.Strain && a.caller(i).Side() == winningSide {
			declarer = a.caller(i)
			break
		}
	}
	return Contract{
		Level:    final.Level,
		Strain:   final.Strain,
		Declarer: declarer,
		Doubling: doubling,
	}, nil
}
