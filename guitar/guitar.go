package guitar

import (
	"fmt"

	"github.com/marcusleclerc/fretwise/music"
)

// Guitar is an immutable physical model of a fretted instrument: its
// tuning, scale geometry, and the fretboard of positions derived from them.
type Guitar struct {
	tuning         []music.Pitch
	numFrets       int
	nutWidth       float64
	bridgeWidth    float64
	firstFretWidth float64
	scaleLength    float64
	fretboard      []FretPosition
}

// New builds a Guitar and its fretboard. tuning lists open-string pitches
// low to high; all measurements are in millimeters.
func New(tuning []music.Pitch, numFrets int, nutWidth, bridgeWidth, firstFretWidth, scaleLength float64) (*Guitar, error) {
	if len(tuning) == 0 {
		return nil, fmt.Errorf("guitar: tuning must have at least one string")
	}
	if numFrets < 0 {
		return nil, fmt.Errorf("guitar: numFrets must be non-negative, got %d", numFrets)
	}

	g := &Guitar{
		tuning:         append([]music.Pitch(nil), tuning...),
		numFrets:       numFrets,
		nutWidth:       nutWidth,
		bridgeWidth:    bridgeWidth,
		firstFretWidth: firstFretWidth,
		scaleLength:    scaleLength,
	}
	g.buildFretboard()
	return g, nil
}

// buildFretboard materializes the dense (numFrets+1)*numStrings grid of
// fret positions in Euclidean space, fret 0 (open) first.
func (g *Guitar) buildFretboard() {
	numStrings := len(g.tuning)
	nutOffset := (g.bridgeWidth - g.nutWidth) / 2
	nutStringWidth := g.nutWidth / float64(numStrings)
	bridgeStringWidth := g.bridgeWidth / float64(numStrings)

	total := (g.numFrets + 1) * numStrings
	g.fretboard = make([]FretPosition, total)
	for i := 0; i < total; i++ {
		str := i % numStrings
		fret := i / numStrings
		x := g.scaleLength - fretDistance(g.firstFretWidth, 0, fret)
		y := (nutOffset+float64(str)*nutStringWidth-float64(str)*bridgeStringWidth)/g.scaleLength*x + float64(str)*bridgeStringWidth
		g.fretboard[i] = FretPosition{
			FretID:    i,
			String:    str,
			Fret:      fret,
			X:         x,
			Y:         y,
			Pitch:     g.tuning[str] + music.Pitch(fret),
			FingerNum: Undefined,
		}
	}
}

// NumStrings returns the number of strings on the guitar.
func (g *Guitar) NumStrings() int {
	return len(g.tuning)
}

// NumFrets returns the number of frets on the guitar (excluding fret 0).
func (g *Guitar) NumFrets() int {
	return g.numFrets
}

// Tuning returns a copy of the guitar's open-string pitches.
func (g *Guitar) Tuning() []music.Pitch {
	return append([]music.Pitch(nil), g.tuning...)
}

// PositionAt returns the fret position for a given string and fret.
func (g *Guitar) PositionAt(str, fret int) FretPosition {
	return g.fretboard[fret*len(g.tuning)+str]
}

// OpenStringMask returns the chord's notes sounded by open strings at or
// above tonicPitch.
func (g *Guitar) OpenStringMask(chord music.ChordMask, tonicPitch music.Pitch) music.ChordMask {
	return music.OpenStringMask(g.tuning, chord, tonicPitch)
}
