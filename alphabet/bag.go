package alphabet

import (
	"fmt"

	"lukechampine.com/frand"
)

// englishDistribution is the standard 100-tile set, in tile order.
var englishDistribution = []struct {
	tile  rune
	count int
}{
	{'A', 9}, {'B', 2}, {'C', 2}, {'D', 4}, {'E', 12}, {'F', 2}, {'G', 3},
	{'H', 2}, {'I', 9}, {'J', 1}, {'K', 1}, {'L', 4}, {'M', 2}, {'N', 6},
	{'O', 8}, {'P', 2}, {'Q', 1}, {'R', 6}, {'S', 4}, {'T', 6}, {'U', 4},
	{'V', 2}, {'W', 2}, {'X', 1}, {'Y', 2}, {'Z', 1}, {BlankCharacter, 2},
}

// A Bag is the bag o'tiles.
type Bag struct {
	tiles []rune
	// rng is nil for the process-wide generator.
	rng *frand.RNG
}

func NewBag() *Bag {
	b := &Bag{}
	b.Refill()
	return b
}

// NewSeededBag returns a bag whose draws are reproducible for a given seed.
func NewSeededBag(seed [32]byte) *Bag {
	b := &Bag{rng: frand.NewCustom(seed[:], 1024, 12)}
	b.Refill()
	return b
}

func (b *Bag) Refill() {
	b.tiles = b.tiles[:0]
	for _, d := range englishDistribution {
		for i := 0; i < d.count; i++ {
			b.tiles = append(b.tiles, d.tile)
		}
	}
}

func (b *Bag) intn(n int) int {
	if b.rng != nil {
		return b.rng.Intn(n)
	}
	return frand.Intn(n)
}

func (b *Bag) TilesRemaining() int {
	return len(b.tiles)
}

// Draw draws n tiles from the bag.
func (b *Bag) Draw(n int) ([]rune, error) {
	if n > len(b.tiles) {
		return nil, fmt.Errorf("tried to draw %v tiles, tile bag has %v",
			n, len(b.tiles))
	}
	drawn := make([]rune, n)
	for i := 0; i < n; i++ {
		idx := b.intn(len(b.tiles))
		drawn[i] = b.tiles[idx]
		last := len(b.tiles) - 1
		b.tiles[idx] = b.tiles[last]
		b.tiles = b.tiles[:last]
	}
	return drawn, nil
}

// DrawAtMost draws at most n tiles from the bag. It can draw fewer if there
// are fewer tiles than n, and even draw no tiles at all.
func (b *Bag) DrawAtMost(n int) []rune {
	if n > len(b.tiles) {
		n = len(b.tiles)
	}
	drawn, _ := b.Draw(n)
	return drawn
}

// Remove takes specific tiles out of the bag, for instance tiles that are
// already on a board loaded from a file.
func (b *Bag) Remove(tiles []rune) error {
	for _, t := range tiles {
		found := false
		for i, bt := range b.tiles {
			if bt == t {
				last := len(b.tiles) - 1
				b.tiles[i] = b.tiles[last]
				b.tiles = b.tiles[:last]
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("tile %q is not in the bag", t)
		}
	}
	return nil
}

// PutBack returns tiles to the bag.
func (b *Bag) PutBack(tiles []rune) {
	b.tiles = append(b.tiles, tiles...)
}
