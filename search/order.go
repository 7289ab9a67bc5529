package search

import "github.com/marcusleclerc/fretwise/guitar"

// orderPositions arranges a fretted tonic together with up to three other
// placements (already known to be in ascending fret-id order among
// themselves) into ascending fret-id order overall. This is the order the
// fretboard grid discovers positions in, and the order fingering.Build
// expects its selected placements in.
func orderPositions(tonic, j, k, l guitar.FingerPlacement, numPos int) []guitar.FingerPlacement {
	switch numPos {
	case 1:
		return []guitar.FingerPlacement{tonic}
	case 2:
		if tonic.Pos.FretID < j.Pos.FretID {
			return []guitar.FingerPlacement{tonic, j}
		}
		return []guitar.FingerPlacement{j, tonic}
	case 3:
		if tonic.Pos.FretID < j.Pos.FretID {
			return []guitar.FingerPlacement{tonic, j, k}
		} else if tonic.Pos.FretID < k.Pos.FretID {
			return []guitar.FingerPlacement{j, tonic, k}
		}
		return []guitar.FingerPlacement{j, k, tonic}
	case 4:
		if tonic.Pos.FretID < j.Pos.FretID {
			return []guitar.FingerPlacement{tonic, j, k, l}
		} else if tonic.Pos.FretID < k.Pos.FretID {
			return []guitar.FingerPlacement{j, tonic, k, l}
		} else if tonic.Pos.FretID < l.Pos.FretID {
			return []guitar.FingerPlacement{j, k, tonic, l}
		}
		return []guitar.FingerPlacement{j, k, l, tonic}
	}
	return nil
}
