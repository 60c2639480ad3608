package movegen

import (
	"github.com/crossplay/bestword/alphabet"
	"github.com/crossplay/bestword/board"
	"github.com/crossplay/bestword/move"
)

const (
	// probRadius is how far the probability window reaches from the tile.
	probRadius   = 2
	maxNeighbors = 3
	// DefaultTopK is how many anchor tiles the ranker keeps.
	DefaultTopK = 5

	// Costs in the directed window: a blocked or occupied square on the line
	// costs lineCost, an occupied square beside the line costs sideCost.
	lineCost = 3
	sideCost = 1

	directedMax   = (probRadius + 1) << 2
	undirectedMax = (2*probRadius+1)*(2*probRadius+1) - 1
)

// EmptyNeighbors counts the empty orthogonal neighbors of (x, y). Squares
// off the board are not empty.
func EmptyNeighbors(b *board.Board, x, y int) int {
	n := 0
	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		if b.Get(x+d[0], y+d[1]).IsEmpty() {
			n++
		}
	}
	return n
}

// BestDirection is the axis along which a word could cross (x, y): horizontal
// when both horizontal neighbors are empty, else vertical when both vertical
// neighbors are, else none.
func BestDirection(b *board.Board, x, y int) move.Direction {
	if b.Get(x-1, y).IsEmpty() && b.Get(x+1, y).IsEmpty() {
		return move.Horizontal
	}
	if b.Get(x, y-1).IsEmpty() && b.Get(x, y+1).IsEmpty() {
		return move.Vertical
	}
	return move.NoDirection
}

// TileProbability estimates how likely a word can be built through the tile
// at (x, y). Crowded surroundings and valuable letters lower it. A tile with
// no empty neighbor scores 0.
func TileProbability(b *board.Board, x, y int) float64 {
	neighbors := EmptyNeighbors(b, x, y)
	if neighbors == 0 {
		return 0
	}
	dir := move.NoDirection
	if neighbors >= 2 {
		dir = BestDirection(b, x, y)
	}

	prob := 100.0
	var empty, maxEmpty int
	if dir == move.NoDirection {
		prob /= maxNeighbors
		maxEmpty = undirectedMax
		empty = maxEmpty
		for dx := -probRadius; dx <= probRadius; dx++ {
			for dy := -probRadius; dy <= probRadius; dy++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if !b.Get(x+dx, y+dy).IsEmpty() {
					empty--
				}
			}
		}
	} else {
		prob *= float64(neighbors) / maxNeighbors
		maxEmpty = directedMax
		empty = directedEmptiness(b, x, y, dir)
	}

	prob *= float64(empty) / float64(maxEmpty)
	// a blank on the board is worth nothing, whatever letter it stands for
	v := 0
	if t := b.Tile(x, y); t != nil && t.Value > 0 {
		v = t.Value
	}
	prob -= 5 * float64(v) / alphabet.MaxLetterPoints
	return prob
}

// directedEmptiness scores the line through (x, y) along dir. Once a tile
// past the target blocks the line, every remaining square counts as taken.
func directedEmptiness(b *board.Board, x, y int, dir move.Direction) int {
	empty := directedMax
	blocked := false
	for off := -probRadius; off <= probRadius; off++ {
		if off == 0 {
			continue
		}
		if blocked {
			empty -= lineCost
			continue
		}
		lx, ly := x+off, y
		// side squares sit across the line
		s1x, s1y, s2x, s2y := lx, ly-1, lx, ly+1
		if dir == move.Vertical {
			lx, ly = x, y+off
			s1x, s1y, s2x, s2y = lx-1, ly, lx+1, ly
		}
		if !b.Get(lx, ly).IsEmpty() {
			if off > 0 {
				blocked = true
			}
			empty -= lineCost
			continue
		}
		if b.Get(s1x, s1y).IsLetter() {
			empty -= sideCost
		}
		if b.Get(s2x, s2y).IsLetter() {
			empty -= sideCost
		}
	}
	return empty
}

// CalcProbabilities stores TileProbability on every occupied tile.
func CalcProbabilities(b *board.Board) {
	for _, t := range b.OccupiedTiles() {
		t.Probability = TileProbability(b, t.X, t.Y)
	}
}

// HighestProbabilities ranks the occupied tiles of b, best first, and keeps
// at most k of them. Only tiles with a positive probability qualify; among
// equal probabilities the first in row-major order wins. It refreshes the
// Probability of every tile on b.
func HighestProbabilities(b *board.Board, k int) []board.Tile {
	CalcProbabilities(b)
	top := make([]board.Tile, 0, k)
	for _, t := range b.OccupiedTiles() {
		if t.Probability <= 0 {
			continue
		}
		idx := len(top)
		for i := range top {
			if t.Probability > top[i].Probability {
				idx = i
				break
			}
		}
		if idx >= k {
			continue
		}
		if len(top) < k {
			top = append(top, board.Tile{})
		}
		copy(top[idx+1:], top[idx:len(top)-1])
		top[idx] = *t
	}
	return top
}
