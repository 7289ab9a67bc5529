package fingering

import (
	"math"

	"github.com/marcusleclerc/fretwise/guitar"
	"github.com/marcusleclerc/fretwise/hand"
	"github.com/marcusleclerc/fretwise/music"
)

// Build materializes selected finger placements (ordered by ascending
// fret id, the order the searcher discovers and orders them in) into a
// full per-string Fingering, muting any string that doesn't belong to the
// chord or falls below the tonic, counting unisons, and computing the
// eight category scores. It returns (nil, false) if the resulting chord
// does not exactly match the requested one.
func Build(
	g *guitar.Guitar,
	selected []guitar.FingerPlacement,
	chord music.ChordMask,
	tonicPitch music.Pitch,
	assignmentID int,
	comfortScore float64,
	numEnabledFingers int,
	barreCount int,
) (*Fingering, bool) {
	numStrings := g.NumStrings()
	k := len(selected)

	minFret := math.MaxInt32
	maxFret := 0
	for _, p := range selected {
		if p.Pos.Fret < minFret {
			minFret = p.Pos.Fret
		}
		if p.Pos.Fret > maxFret {
			maxFret = p.Pos.Fret
		}
	}
	if k == 0 {
		minFret = 0
	}

	f := &Fingering{
		Positions: make([]guitar.FretPosition, numStrings),
		Selected:  selected,
		Tonic:     tonicPitch,
		MinFret:   minFret,
		MaxFret:   maxFret,
	}

	openFret := 0
	barreFinger := guitar.Undefined
	numUnison := 0
	numMutes := 0
	lowestSoundingString := -1
	var chordProduced music.ChordMask
	seenPitches := make(map[music.Pitch]bool, numStrings)

	for i := 0; i < numStrings; i++ {
		slot := -1
		for s, p := range selected {
			if p.Pos.String == i {
				slot = s
				break
			}
		}

		var pos guitar.FretPosition
		if slot == -1 {
			pos = g.PositionAt(i, openFret)
			pos.FingerNum = barreFinger
		} else {
			pos = selected[slot].Pos
			pos.FingerNum = hand.AssignmentTable[assignmentID][slot]
			if selected[slot].IsBarre && pos.Fret > openFret {
				openFret = pos.Fret
				barreFinger = pos.FingerNum
			}
		}

		if pos.Pitch < tonicPitch || !chord.HasClass(pos.Pitch.Class()) {
			pos.Mute()
			numMutes++
		} else {
			chordProduced |= 1 << uint(pos.Pitch.Class())
			if lowestSoundingString == -1 {
				lowestSoundingString = i
			}
			if seenPitches[pos.Pitch] {
				numUnison++
			} else {
				seenPitches[pos.Pitch] = true
			}
		}
		f.Positions[i] = pos
	}

	if chordProduced != chord {
		return nil, false
	}

	// Strings below the lowest sounding string aren't penalized as mutes.
	numMutes -= lowestSoundingString
	f.Chord = chordProduced
	f.MuteCount = numMutes
	computeScores(f, numUnison, comfortScore, lowestSoundingString, numEnabledFingers, k, len(seenPitches), barreCount)
	return f, true
}

func computeScores(f *Fingering, numUnison int, comfortScore float64, lowestSoundingString, numEnabledFingers, numPlacements, numDistinctPitches, numBarres int) {
	numStrings := len(f.Positions)
	f.Scores[0] = 1 / (1 + float64(numUnison))
	f.Scores[1] = 1 / float64((f.MuteCount+1)*(f.MuteCount+1))
	f.Scores[2] = comfortScore
	f.Scores[3] = float64(numStrings-lowestSoundingString) / float64(numStrings)
	f.Scores[4] = float64(numEnabledFingers-numPlacements) / float64(numEnabledFingers)
	f.Scores[5] = 1 / float64(f.MaxFret-f.MinFret+1)
	f.Scores[6] = 1 - 1/float64(numDistinctPitches)
	f.Scores[7] = 1 / (1 + float64(numBarres))
}
