package deal

import (
	"testing"

	"github.com/matryer/is"
)

func TestContractFromAuction(t *testing.T) {
	is := is.New(t)
	// North opens 1S, South raises to game, West doubles. The double must
	// not affect declarer identification: North named spades first for NS.
	a, err := ParseAuction(North, "1S-P-4S-X-P-P-P")
	is.NoErr(err)
	c, err := a.Contract()
	is.NoErr(err)
	is.Equal(c.Level, 4)
	is.Equal(c.Strain, StrainSpades)
	is.Equal(c.Declarer, North)
	is.Equal(c.Doubling, Doubled)
	is.Equal(c.OpeningLeader(), East)
}

func TestContractDeclarerIsFirstNamerOfStrain(t *testing.T) {
	is := is.New(t)
	// South ends up in hearts, but North bid hearts first for the
	// partnership, so North declares.
	a, err := ParseAuction(North, "1H-P-2C-P-4H-P-P-P")
	is.NoErr(err)
	c, err := a.Contract()
	is.NoErr(err)
	is.Equal(c.Level, 4)
	is.Equal(c.Strain, StrainHearts)
	is.Equal(c.Declarer, North)
	is.Equal(c.Doubling, Undoubled)
}

func TestContractOpponentBidSameStrainIgnored(t *testing.T) {
	is := is.New(t)
	// East also bid spades, but only the winning partnership's bids count.
	a, err := ParseAuction(North, "1C-1S-2S-P-4S-P-P-P")
	is.NoErr(err)
	c, err := a.Contract()
	is.NoErr(err)
	is.Equal(c.Declarer, South) // South bid spades first for NS
}

func TestRedoubledContract(t *testing.T) {
	is := is.New(t)
	a, err := ParseAuction(West, "1NT-X-XX-P-P-P")
	is.NoErr(err)
	c, err := a.Contract()
	is.NoErr(err)
	is.Equal(c.Strain, NoTrump)
	is.Equal(c.Declarer, West)
	is.Equal(c.Doubling, Redoubled)
}

func TestPassedOut(t *testing.T) {
	is := is.New(t)
	a, err := ParseAuction(North, "P-P-P-P")
	is.NoErr(err)
	_, err = a.Contract()
	is.Equal(err, ErrPassedOut)
}

func TestParseContractRoundTrip(t *testing.T) {
	is := is.New(t)
	for _, c := range []Contract{
		{Level: 4, Strain: StrainSpades, Declarer: South},
		{Level: 3, Strain: NoTrump, Declarer: West, Doubling: Doubled},
		{Level: 7, Strain: StrainClubs, Declarer: East, Doubling: Redoubled},
	} {
		parsed, err := ParseContract(c.String())
		is.NoErr(err)
		is.Equal(parsed, c)
	}
}

func TestPositionCycle(t *testing.T) {
	is := is.New(t)
	is.Equal(North.Next(), East)
	is.Equal(East.Next(), South)
	is.Equal(South.Next(), West)
	is.Equal(West.Next(), North)
	is.Equal(North.Partner(), South)
	is.Equal(East.Side(), EastWest)
	is.Equal(NorthSouth.Opponent(), EastWest)
}

func TestRoles(t *testing.T) {
	is := is.New(t)
	c := Contract{Level: 3, Strain: NoTrump, Declarer: South}
	is.Equal(c.RoleOf(South), RoleDeclarer)
	is.Equal(c.RoleOf(North), RoleDummy)
	is.Equal(c.RoleOf(East), RoleDefender)
	is.Equal(c.RoleOf(West), RoleDefender)
}
