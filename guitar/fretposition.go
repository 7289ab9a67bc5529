package guitar

import (
	"math"

	"github.com/marcusleclerc/fretwise/music"
)

// Finger number sentinels for a FretPosition that isn't held by a
// numbered finger.
const (
	// Mute marks a string that does not sound.
	Mute = -1
	// Undefined marks a position with no finger assigned yet.
	Undefined = -2
)

// fretConstA and fretConstB encode 12-TET fret spacing; preserved exactly
// from the reference implementation.
const (
	fretConstA = -18.876616839465076
	fretConstB = -0.057762265046662105
)

// fretDistance computes the physical distance between fret m and fret n
// given a's first-fret width, per the standard 12-TET fret-spacing formula.
func fretDistance(a float64, m, n int) float64 {
	return fretConstA * a * (math.Exp(fretConstB*float64(n)) - math.Exp(fretConstB*float64(m)))
}

// FretPosition is one cell of the fretboard grid: a string/fret pair with
// its Euclidean position, the pitch it sounds, and (once assigned) which
// finger depresses it.
type FretPosition struct {
	FretID     int
	String     int
	Fret       int
	X, Y       float64
	Pitch      music.Pitch
	FingerNum  int
}

// Distance returns the Euclidean fret-board distance between two positions.
func Distance(a, b FretPosition) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// IsMuted reports whether the position is marked as muted.
func (fp FretPosition) IsMuted() bool {
	return fp.FingerNum == Mute
}

// Mute marks the position as not sounding, per the fixed-point
// fret-zeroing rule: the pitch keeps the open-string value, the fret
// resets to 0, and the finger number becomes Mute.
func (fp *FretPosition) Mute() {
	fp.Pitch -= music.Pitch(fp.Fret)
	fp.Fret = 0
	fp.FingerNum = Mute
}
