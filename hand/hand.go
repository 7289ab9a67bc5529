// Package hand models the anatomical reach of a player's hand: the
// comfortable min/max span between pairs of fingers, which fingers are
// available, and the best way to assign finger numbers to a chosen set of
// fret positions.
package hand

import "fmt"

// Finger identifies one of the four fretting fingers: 0=index, 1=middle,
// 2=ring, 3=pinky.
type Finger int

const numFingers = 4

// EnabledMask is a 4-bit set of which fingers the player can use, bit i
// for finger i.
type EnabledMask uint8

// pairIndex maps an unordered finger pair (i, j), i<j, to its position in
// the 6-entry min/max distance arrays ordered (0,1) (0,2) (0,3) (1,2)
// (1,3) (2,3).
var pairIndex = [4][4]int{
	{-1, 0, 1, 2},
	{0, -1, 3, 4},
	{1, 3, -1, 5},
	{2, 4, 5, -1},
}

// Model holds the pairwise reach tables and enabled-finger set for a
// player's hand.
type Model struct {
	maxDist       [4][4]float64
	minDist       [4][4]float64
	enabled       EnabledMask
	numFingers    int
	maxSearchDist float64
}

// New builds a hand Model from the enabled-finger bitmask and the six
// pairwise min/max distances, ordered (1,2) (1,3) (1,4) (2,3) (2,4) (3,4)
// using 1-based finger numbers as in the spec (index 0 here).
func New(enabled EnabledMask, minPairs, maxPairs [6]float64) (*Model, error) {
	if enabled == 0 {
		return nil, fmt.Errorf("hand: at least one finger must be enabled")
	}
	for i, v := range maxPairs {
		if v < minPairs[i] {
			return nil, fmt.Errorf("hand: max distance %.2f is less than min distance %.2f for pair %d", v, minPairs[i], i)
		}
	}

	m := &Model{enabled: enabled}
	for i := 0; i < numFingers; i++ {
		for j := i + 1; j < numFingers; j++ {
			idx := pairIndex[i][j]
			m.maxDist[i][j] = maxPairs[idx]
			m.maxDist[j][i] = maxPairs[idx]
			m.minDist[i][j] = minPairs[idx]
			m.minDist[j][i] = minPairs[idx]
		}
	}

	for f := 0; f < numFingers; f++ {
		if enabled&(1<<uint(f)) != 0 {
			m.numFingers++
		}
	}

	m.maxSearchDist = maxPairs[0]
	for _, v := range maxPairs[1:] {
		if v > m.maxSearchDist {
			m.maxSearchDist = v
		}
	}

	return m, nil
}

// NumFingers returns the number of enabled fingers.
func (m *Model) NumFingers() int {
	return m.numFingers
}

// MaxSearchDist returns the largest max-distance across all finger pairs,
// used to bound the search's reachability pruning.
func (m *Model) MaxSearchDist() float64 {
	return m.maxSearchDist
}

// Enabled reports whether finger f is available.
func (m *Model) Enabled(f Finger) bool {
	return m.enabled&(1<<uint(f)) != 0
}
