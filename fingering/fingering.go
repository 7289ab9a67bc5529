// Package fingering materializes a set of selected finger placements into
// a concrete per-string fingering, and computes the eight category scores
// the rater combines into a single quality score.
package fingering

import (
	"github.com/marcusleclerc/fretwise/guitar"
	"github.com/marcusleclerc/fretwise/music"
)

// NumScores is the number of category scores computed for each fingering.
const NumScores = 8

// Fingering is one concrete way to play a chord: a fret position for every
// string (muted or sounding), the placements a player's fingers actually
// hold, and the scores used to rank it against other candidates.
type Fingering struct {
	Positions []guitar.FretPosition   // one per string
	Selected  []guitar.FingerPlacement // the held finger placements
	Chord     music.ChordMask          // the chord actually produced
	Tonic     music.Pitch

	Scores [NumScores]float64
	Score  float64

	MuteCount int
	MinFret   int
	MaxFret   int

	Rating    float64
	HasRating bool
}

// LowestSoundingString returns the index of the lowest (closest to the
// tonic) string that sounds, or -1 if none do.
func (f *Fingering) LowestSoundingString() int {
	for i, p := range f.Positions {
		if !p.IsMuted() {
			return i
		}
	}
	return -1
}
