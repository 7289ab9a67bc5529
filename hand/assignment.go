package hand

import (
	"math"

	"github.com/marcusleclerc/fretwise/guitar"
)

// AssignmentTable lists the 16 canonical finger-assignment variants: the
// 15 ascending, non-crossing subsets of {0,1,2,3} of size 1-4, plus index
// 15 which is invalid (used as a sentinel, never matched by a real
// placement count). Slot s of assignment id receives finger
// AssignmentTable[id][s], where slot s indexes placements in the order
// the searcher discovered them (ascending by fret id).
var AssignmentTable = [16][]int{
	{0}, {1}, {2}, {3},
	{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
	{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3},
	{0, 1, 2, 3},
	{},
}

// Invalid is the sentinel assignment id meaning no valid assignment exists.
const Invalid = 15

// enabledMaskFor returns the 4-bit mask of fingers used by assignment id.
func enabledMaskFor(id int) EnabledMask {
	var m EnabledMask
	for _, f := range AssignmentTable[id] {
		m |= 1 << uint(f)
	}
	return m
}

// candidatesByCount lists, for each placement count 1-4, the assignment ids
// that use exactly that many fingers (mirrors the size-1/2/3/4 groups of
// AssignmentTable).
var candidatesByCount = map[int][]int{
	1: {0, 1, 2, 3},
	2: {4, 5, 6, 7, 8, 9},
	3: {10, 11, 12, 13},
	4: {14},
}

// FindBestAssignment enumerates every canonical finger assignment whose
// cardinality matches len(placements) and whose fingers are all enabled,
// scores each with Comfort, and returns the best (score, assignment id).
// It returns (0, Invalid) if no enabled assignment has the right
// cardinality.
func (m *Model) FindBestAssignment(placements []guitar.FingerPlacement) (float64, int) {
	k := len(placements)
	candidates, ok := candidatesByCount[k]
	if !ok {
		return 0, Invalid
	}

	best := math.Inf(-1)
	bestID := Invalid
	for _, id := range candidates {
		if enabledMaskFor(id)&^EnabledMask(m.enabled) != 0 {
			continue // this assignment needs a finger the player doesn't have
		}
		score := m.Comfort(placements, id)
		if score > best {
			best = score
			bestID = id
		}
	}
	if bestID == Invalid {
		return 0, Invalid
	}
	return best, bestID
}
