package guitar

import "github.com/marcusleclerc/fretwise/music"

// FingerPlacement is a candidate spot for a single finger: the fret
// position it rests on, the set of pitch classes it sounds (a barre sounds
// every string covered at that fret), and whether it is a barre.
type FingerPlacement struct {
	Pos     FretPosition
	Notes   music.ChordMask
	IsBarre bool
}

// FindPositions enumerates every FingerPlacement whose pitch class belongs
// to chord, scanning the fretboard from the highest fret id down so that
// chord-tone positions sharing a fret can be grouped into barres when
// barreEnabled is true; strings between them whose position is not a chord
// tone do not break the group. For a barre, a non-barre variant covering only that
// position's own pitch class is also emitted alongside the barre variant.
// The result is built by prepending, so it ascends by fret id.
func (g *Guitar) FindPositions(chord music.ChordMask, barreEnabled bool) []FingerPlacement {
	var out []FingerPlacement
	var currentNotes music.ChordMask
	currentFret := -1

	for i := len(g.fretboard) - 1; i >= 0; i-- {
		pos := g.fretboard[i]
		if !chord.HasClass(pos.Pitch.Class()) {
			continue
		}

		isBarre := false
		if currentFret == pos.Fret && pos.Fret != 0 && barreEnabled {
			currentNotes |= 1 << uint(pos.Pitch.Class())
			isBarre = true
		} else {
			currentFret = pos.Fret
			currentNotes = 1 << uint(pos.Pitch.Class())
		}

		if isBarre {
			// The non-barred variant sounds only this position's own pitch class.
			out = prepend(out, FingerPlacement{Pos: pos, Notes: 1 << uint(pos.Pitch.Class()), IsBarre: false})
		}
		out = prepend(out, FingerPlacement{Pos: pos, Notes: currentNotes, IsBarre: isBarre})
	}
	return out
}

func prepend(list []FingerPlacement, fp FingerPlacement) []FingerPlacement {
	return append([]FingerPlacement{fp}, list...)
}
