package alphabeta

import (
	"github.com/cespare/xxhash"
	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"

	"github.com/JFrunk/bridgeplay/card"
	"github.com/JFrunk/bridgeplay/deal"
	"github.com/JFrunk/bridgeplay/game"
)

const (
	ttExact uint8 = iota
	ttLower
	ttUpper
)

type ttEntry struct {
	value float32
	depth int8
	flag  uint8
}

// transpositionTable caches node evaluations keyed by position hash. The
// same card distribution is reachable through many play orders, so hits
// are frequent even in shallow searches. The entry cap is derived from
// system memory once, at first construction.
type transpositionTable struct {
	entries    map[uint64]ttEntry
	maxEntries int
	buf        []byte
}

var maxTableEntries int

func init() {
	// One entry is ~32 bytes in the map; budget about 1/64th of RAM.
	budget := memory.TotalMemory() / 64 / 32
	if budget == 0 || budget > (1<<24) {
		budget = 1 << 24
	}
	maxTableEntries = int(budget)
	log.Debug().Int("max-entries", maxTableEntries).Msg("transposition-table-size")
}

func newTranspositionTable() *transpositionTable {
	return &transpositionTable{
		entries:    make(map[uint64]ttEntry),
		maxEntries: maxTableEntries,
		buf:        make([]byte, 0, 64),
	}
}

func (t *transpositionTable) reset() {
	clear(t.entries)
}

// positionKey hashes the searchable state: which cards remain where, the
// trick in progress, whose turn it is, and the declaring side's banked
// tricks. Hands are encoded as per-seat 52-bit sets so the key is
// independent of card order within a hand. The banked count must be part
// of the key: two play orders of the same cards can leave identical
// remaining hands and leader while the sides have won different numbers
// of tricks, and the cached cutoff values include the banked tricks.
func (t *transpositionTable) positionKey(g *game.Game, declSide deal.Side) uint64 {
	t.buf = t.buf[:0]
	for _, seat := range deal.Positions() {
		var bits uint64
		for _, c := range g.Hand(seat) {
			bits |= 1 << (uint(c.Suit)*13 + uint(c.Rank-card.Two))
		}
		t.buf = appendUint64(t.buf, bits)
	}
	trick := g.CurrentTrick()
	for _, p := range trick.Plays {
		t.buf = append(t.buf, byte(p.Seat), byte(p.Card.Suit), byte(p.Card.Rank))
	}
	t.buf = append(t.buf, byte(g.NextToPlay()), byte(g.TricksWonBy(declSide)))
	return xxhash.Sum64(t.buf)
}

func appendUint64(b []byte, v uint64) []byte {
	for i := 0; i < 8; i++ {
		b = append(b, byte(v>>(8*i)))
	}
	return b
}

// lookup returns the cached entry if it was computed at least as deep as
// the caller needs.
func (t *transpositionTable) lookup(key uint64, depth int) (ttEntry, bool) {
	entry, ok := t.entries[key]
	if !ok || int(entry.depth) < depth {
		return ttEntry{}, false
	}
	return entry, true
}

func (t *transpositionTable) store(key uint64, value float32, depth int, flag uint8) {
	if len(t.entries) >= t.maxEntries {
		if _, exists := t.entries[key]; !exists {
			return
		}
	}
	t.entries[key] = ttEntry{value: value, depth: int8(depth), flag: flag}
}
