// Package export renders a computed fingering as a Standard MIDI File: a
// one-bar strum of every sounding string's pitch, muted strings excluded.
package export

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/marcusleclerc/fretwise/fingering"
)

const (
	midiChannel   = 0
	midiVelocity  = 90
	ticksPerBeat  = 960
	strumGapTicks = 20
	barTicks      = ticksPerBeat * 4
)

// WriteMIDI renders f as a one-bar strummed chord and writes it to a
// Standard MIDI File at path. fretwise's Pitch is already a MIDI note
// number (see music.Pitch), so no remapping is needed.
func WriteMIDI(f *fingering.Fingering, path string) error {
	notes := soundingNotes(f)
	if len(notes) == 0 {
		return fmt.Errorf("export: fingering has no sounding strings to render")
	}

	track := smf.Track{}
	track.Add(0, smf.MetaTempo(120))
	track.Add(0, smf.MetaInstrument("Guitar"))

	for i, n := range notes {
		delta := uint32(0)
		if i > 0 {
			delta = strumGapTicks
		}
		track.Add(delta, midi.NoteOn(midiChannel, n, midiVelocity))
	}
	track.Add(barTicks, midi.NoteOff(midiChannel, notes[0]))
	for _, n := range notes[1:] {
		track.Add(0, midi.NoteOff(midiChannel, n))
	}
	track.Close(0)

	sm := smf.New()
	sm.TimeFormat = smf.MetricTicks(ticksPerBeat)
	if err := sm.Add(track); err != nil {
		return fmt.Errorf("export: adding track: %w", err)
	}
	if err := sm.WriteFile(path); err != nil {
		return fmt.Errorf("export: writing %s: %w", path, err)
	}
	return nil
}

func soundingNotes(f *fingering.Fingering) []uint8 {
	var notes []uint8
	for _, pos := range f.Positions {
		if pos.IsMuted() {
			continue
		}
		p := int(pos.Pitch)
		if p < 0 {
			p = 0
		}
		if p > 127 {
			p = 127
		}
		notes = append(notes, uint8(p))
	}
	return notes
}
