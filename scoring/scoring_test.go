package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JFrunk/bridgeplay/deal"
)

func contract(level int, strain deal.Strain, doubling deal.Doubling) deal.Contract {
	return deal.Contract{Level: level, Strain: strain, Declarer: deal.South, Doubling: doubling}
}

func TestScoreTable(t *testing.T) {
	cases := []struct {
		name       string
		contract   deal.Contract
		tricks     int
		vulnerable bool
		points     int
	}{
		{"part-score minor", contract(2, deal.StrainDiamonds, deal.Undoubled), 8, false, 90},
		{"part-score major with overtrick", contract(2, deal.StrainHearts, deal.Undoubled), 9, false, 140},
		{"game in spades", contract(4, deal.StrainSpades, deal.Undoubled), 10, false, 420},
		{"game in spades vulnerable +1", contract(4, deal.StrainSpades, deal.Undoubled), 11, true, 650},
		{"3NT exactly", contract(3, deal.NoTrump, deal.Undoubled), 9, false, 400},
		{"small slam vulnerable", contract(6, deal.StrainSpades, deal.Undoubled), 12, true, 1430},
		{"grand slam no-trump", contract(7, deal.NoTrump, deal.Undoubled), 13, false, 1520},
		{"doubled into game", contract(2, deal.StrainSpades, deal.Doubled), 8, false, 470},
		{"doubled into game +1", contract(2, deal.StrainSpades, deal.Doubled), 9, false, 570},
		{"redoubled 1NT vulnerable", contract(1, deal.NoTrump, deal.Redoubled), 7, true, 760},
		{"down one", contract(4, deal.StrainSpades, deal.Undoubled), 9, false, -50},
		{"down one vulnerable", contract(4, deal.StrainSpades, deal.Undoubled), 9, true, -100},
		{"doubled down three", contract(4, deal.StrainSpades, deal.Doubled), 7, false, -500},
		{"doubled down two vulnerable", contract(4, deal.StrainSpades, deal.Doubled), 8, true, -500},
		{"redoubled down four", contract(4, deal.StrainSpades, deal.Redoubled), 6, false, -1600},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Score(tc.contract, tc.tricks, tc.vulnerable)
			assert.Equal(t, tc.points, r.Points)
			assert.Equal(t, tc.tricks >= tc.contract.TricksNeeded(), r.Made)
		})
	}
}

func TestResultBookkeeping(t *testing.T) {
	r := Score(contract(4, deal.StrainSpades, deal.Undoubled), 11, false)
	assert.True(t, r.Made)
	assert.Equal(t, 1, r.Overtricks)
	assert.Equal(t, 0, r.Undertricks)
	assert.Equal(t, 2, r.DefenderTricks)

	r = Score(contract(4, deal.StrainSpades, deal.Undoubled), 8, false)
	assert.False(t, r.Made)
	assert.Equal(t, 2, r.Undertricks)
	assert.Equal(t, 0, r.Overtricks)
}

func TestScoreZeroSum(t *testing.T) {
	for _, strain := range []deal.Strain{deal.StrainClubs, deal.StrainHearts, deal.NoTrump} {
		for _, doubling := range []deal.Doubling{deal.Undoubled, deal.Doubled, deal.Redoubled} {
			for level := 1; level <= 7; level++ {
				for tricks := 0; tricks <= 13; tricks++ {
					r := Score(contract(level, strain, doubling), tricks, tricks%2 == 0)
					assert.Equal(t, r.ScoreFor(deal.NorthSouth), -r.ScoreFor(deal.EastWest))
				}
			}
		}
	}
}
