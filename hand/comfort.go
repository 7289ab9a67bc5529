package hand

import "github.com/marcusleclerc/fretwise/guitar"

// sf is the comfort shaping function for a finger-pair distance d against
// an allowed band [minD, maxD]. It is tolerant just under the minimum
// (cramped spacing costs little) but penalizes stretching past a soft
// upper shoulder l = 7b/12, intentionally asymmetric.
func sf(d, minD, maxD float64) float64 {
	a := 0.99 * minD
	b := 1.01 * maxD
	if d < a {
		delta := d - a
		return 1 + delta*delta*delta
	}
	l := 7 * b / 12
	if d <= l {
		return 1
	}
	delta := (d - l) / l
	return 1 - delta*delta
}

// Comfort scores how easy it is to hold k placements (in the order the
// searcher discovered them, ascending by fret id) using the finger
// assignment id, as 1 minus the average pairwise penalty 1-sf(d) over
// every pair of placements.
func (m *Model) Comfort(placements []guitar.FingerPlacement, assignmentID int) float64 {
	k := len(placements)
	fingers := AssignmentTable[assignmentID]

	var penalty float64
	pairs := 0
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			fi, fj := fingers[i], fingers[j]
			d := guitar.Distance(placements[i].Pos, placements[j].Pos)
			penalty += 1 - sf(d, m.minDist[fi][fj], m.maxDist[fi][fj])
			pairs++
		}
	}
	if pairs == 0 {
		pairs = 1
	}
	return 1 - penalty/float64(pairs)
}
