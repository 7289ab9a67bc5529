// Package placement implements the reachability predicates that prune
// candidate finger placements before the searcher tries to build a
// fingering from them.
package placement

import "github.com/marcusleclerc/fretwise/guitar"

// T1 is the pairwise admissibility predicate between an already-selected
// anchor placement and a candidate curr: they must be on different
// strings, curr must not be an inadmissible barre relative to anchor (and
// vice versa), and curr must be within maxDist of anchor.
func T1(curr, anchor guitar.FingerPlacement, maxDist float64, canBarre bool) bool {
	if anchor.Pos.String == curr.Pos.String {
		return false
	}
	if curr.IsBarre {
		if !canBarre || curr.Pos.Fret == anchor.Pos.Fret {
			return false
		}
		if !(curr.Pos.String > anchor.Pos.String || curr.Pos.Fret < anchor.Pos.Fret) {
			return false
		}
	}
	if anchor.IsBarre {
		if !(anchor.Pos.Fret < curr.Pos.Fret || anchor.Pos.String > curr.Pos.String) {
			return false
		}
	}
	return guitar.Distance(curr.Pos, anchor.Pos) <= maxDist
}

// Filter1 keeps only the elements of list strictly after anchorIndex that
// satisfy T1 against list[anchorIndex]. Scanning only later indices
// prevents the same unordered combination of placements from being
// enumerated twice.
func Filter1(list []guitar.FingerPlacement, anchorIndex int, maxDist float64, canBarre bool) []guitar.FingerPlacement {
	anchor := list[anchorIndex]
	out := make([]guitar.FingerPlacement, 0, len(list)-anchorIndex-1)
	for i := anchorIndex + 1; i < len(list); i++ {
		if T1(list[i], anchor, maxDist, canBarre) {
			out = append(out, list[i])
		}
	}
	return out
}

// TonicFilterOpen keeps placements usable alongside an open-string tonic:
// pitch at or above the tonic, a different string, and (for a barre) not
// covering the tonic's string at or below its fret.
func TonicFilterOpen(list []guitar.FingerPlacement, tonic guitar.FingerPlacement) []guitar.FingerPlacement {
	out := make([]guitar.FingerPlacement, 0, len(list))
	for _, p := range list {
		if p.Pos.Pitch < tonic.Pos.Pitch || p.Pos.String == tonic.Pos.String {
			continue
		}
		if p.IsBarre && !(p.Pos.String > tonic.Pos.String || p.Pos.Fret < tonic.Pos.Fret) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// TonicFilterFretted keeps placements usable alongside a fretted (non-open)
// tonic: pitch at or above the tonic and admissible under T1 with the
// tonic as anchor, barres allowed.
func TonicFilterFretted(list []guitar.FingerPlacement, tonic guitar.FingerPlacement, maxDist float64) []guitar.FingerPlacement {
	out := make([]guitar.FingerPlacement, 0, len(list))
	for _, p := range list {
		if p.Pos.Pitch < tonic.Pos.Pitch {
			continue
		}
		if T1(p, tonic, maxDist, true) {
			out = append(out, p)
		}
	}
	return out
}
