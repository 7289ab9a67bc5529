// Package music provides the pitch and chord primitives the rest of the
// engine builds on: MIDI-style pitches, 12-bit chord bitmasks, key shifting,
// and the built-in chord and tuning catalogs.
package music

// Pitch is an integer MIDI-style semitone index. Pitch class is Pitch % 12.
type Pitch int

// Class returns the pitch class (0-11) of a pitch.
func (p Pitch) Class() int {
	c := int(p) % 12
	if c < 0 {
		c += 12
	}
	return c
}

// NoteNames are the canonical sharp-spelled names for pitch classes 0-11.
var NoteNames = [12]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// NoteName returns the sharp-spelled name of a pitch's class.
func (p Pitch) NoteName() string {
	return NoteNames[p.Class()]
}
