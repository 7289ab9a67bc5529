package search

import (
	"github.com/marcusleclerc/fretwise/fingering"
	"github.com/marcusleclerc/fretwise/guitar"
	"github.com/marcusleclerc/fretwise/hand"
	"github.com/marcusleclerc/fretwise/music"
)

// tryCandidate finds the best finger assignment for a set of selected
// placements, materializes and rates the resulting fingering, and returns
// nil if no assignment fits the hand, the placements don't produce the
// requested chord, or the fingering falls outside the searcher's bounds.
func (s *Searcher) tryCandidate(chord music.ChordMask, tonicPitch music.Pitch, selected []guitar.FingerPlacement, numBarre int) *fingering.Fingering {
	if numBarre > s.config.MaxBarre {
		return nil
	}
	comfort, assignmentID := s.hand.FindBestAssignment(selected)
	if assignmentID == hand.Invalid {
		return nil
	}
	f, ok := fingering.Build(s.guitar, selected, chord, tonicPitch, assignmentID, comfort, s.hand.NumFingers(), numBarre)
	if !ok {
		return nil
	}
	s.rater.Rate(f)
	if f.MuteCount > s.config.MaxMutes || f.Score < s.config.MinScore {
		return nil
	}
	return f
}
