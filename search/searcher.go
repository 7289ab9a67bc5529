// Package search enumerates candidate finger placements for a chord on a
// guitar and hand model, keeping only the fingerings that produce exactly
// the requested notes and fall within the searcher's mute, score, and
// barre bounds.
package search

import (
	"runtime"
	"sort"
	"sync"

	"github.com/marcusleclerc/fretwise/fingering"
	"github.com/marcusleclerc/fretwise/guitar"
	"github.com/marcusleclerc/fretwise/hand"
	"github.com/marcusleclerc/fretwise/logging"
	"github.com/marcusleclerc/fretwise/music"
	"github.com/marcusleclerc/fretwise/placement"
	"github.com/marcusleclerc/fretwise/rater"
)

// Searcher enumerates candidate fingerings for a chord on a fixed guitar
// and hand model, scoring each candidate with a Rater.
type Searcher struct {
	guitar *guitar.Guitar
	hand   *hand.Model
	rater  *rater.Rater
	config Config
	logger logging.Logger
}

// New builds a Searcher over the given guitar and hand models, rating
// candidates with r and bounding the search per cfg.
func New(g *guitar.Guitar, h *hand.Model, r *rater.Rater, cfg Config) *Searcher {
	return &Searcher{
		guitar: g,
		hand:   h,
		rater:  r,
		config: cfg,
		logger: logging.WithFields(logging.Fields{"component": "search"}),
	}
}

// OpenFingering returns the fingering produced by strumming every open
// string, with an unrated (zero-valued) Score, matching the convention
// that an unfretted chord was never passed through a Rater.
func (s *Searcher) OpenFingering() *fingering.Fingering {
	// The chord is every open string's pitch class, so no string is muted.
	openChord := s.guitar.OpenStringMask(music.ChordMask(0xFFF), 0)
	f, ok := fingering.Build(s.guitar, nil, openChord, 0, 0, 0.0, 4, 0)
	if !ok {
		return nil
	}
	return f
}

// tonicJob pairs a candidate tonic placement with its slot in the result
// slice so worker goroutines can write results without contending on a
// shared index.
type tonicJob struct {
	index int
	tonic guitar.FingerPlacement
}

// Generate searches for every fingering of chord, shifted to the given
// key, that satisfies the searcher's configured bounds. The search is
// partitioned across numWorkers goroutines, one candidate tonic placement
// per unit of work; numWorkers <= 0 defaults to the number of available
// CPUs.
func (s *Searcher) Generate(chord music.ChordMask, key int, numWorkers int) ([]*fingering.Fingering, error) {
	if chord == 0 {
		return nil, nil
	}
	shifted, err := music.ChordToKey(chord, key)
	if err != nil {
		return nil, err
	}

	positions := s.guitar.FindPositions(shifted, s.config.BarreEnabled)

	var tonics []guitar.FingerPlacement
	var candidates []guitar.FingerPlacement
	for _, p := range positions {
		if p.Pos.Pitch.Class() == key {
			tonics = append(tonics, p)
		}
		if p.Pos.Fret > 0 {
			candidates = append(candidates, p)
		}
	}
	if len(tonics) == 0 {
		s.logger.Debug("no tonic placements found", logging.Fields{"chord": shifted.String(), "key": key})
		return nil, nil
	}

	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(tonics) {
		numWorkers = len(tonics)
	}
	s.logger.Debug("starting search", logging.Fields{
		"chord": shifted.String(), "key": key, "tonics": len(tonics),
		"candidates": len(candidates), "workers": numWorkers,
	})

	results := make([][]*fingering.Fingering, len(tonics))
	jobs := make(chan tonicJob, len(tonics))

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results[job.index] = s.searchTonic(shifted, job.tonic, candidates)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, tonic := range tonics {
			jobs <- tonicJob{index: i, tonic: tonic}
		}
	}()

	wg.Wait()

	var out []*fingering.Fingering
	for _, r := range results {
		out = append(out, r...)
	}
	s.logger.Debug("search finished", logging.Fields{"chord": shifted.String(), "key": key, "found": len(out)})
	return out, nil
}

// SortDescendingByScore sorts fs from highest to lowest Score, in place.
func SortDescendingByScore(fs []*fingering.Fingering) {
	sort.Slice(fs, func(i, j int) bool { return fs[i].Score > fs[j].Score })
}

// searchTonic enumerates fingerings anchored on a single tonic placement,
// trying one, two, three, and four-finger combinations up to the hand
// model's finger count. An open-string tonic occupies no finger, so it's
// excluded from the placements handed to tryCandidate; a fretted tonic
// always occupies one.
func (s *Searcher) searchTonic(chord music.ChordMask, tonic guitar.FingerPlacement, notePos []guitar.FingerPlacement) []*fingering.Fingering {
	var out []*fingering.Fingering
	numFingers := s.hand.NumFingers()
	if numFingers < 1 {
		return out
	}
	maxDist := s.hand.MaxSearchDist()
	openNotes := s.guitar.OpenStringMask(chord, tonic.Pos.Pitch)

	if tonic.Pos.Fret == 0 {
		fPos := placement.TonicFilterOpen(notePos, tonic)
		for j, curJ := range fPos {
			numBarreJ := boolToInt(curJ.IsBarre)
			curNoteJ := openNotes | curJ.Notes
			if curNoteJ == chord {
				if c := s.tryCandidate(chord, tonic.Pos.Pitch, []guitar.FingerPlacement{curJ}, numBarreJ); c != nil {
					out = append(out, c)
				}
			}
			if numFingers < 2 {
				continue
			}
			fPos2 := placement.Filter1(fPos, j, maxDist, numBarreJ < s.config.MaxBarre)
			for k, curK := range fPos2 {
				numBarreK := numBarreJ + boolToInt(curK.IsBarre)
				curNoteK := curNoteJ | curK.Notes
				if curNoteK == chord {
					if c := s.tryCandidate(chord, tonic.Pos.Pitch, []guitar.FingerPlacement{curJ, curK}, numBarreK); c != nil {
						out = append(out, c)
					}
				}
				if numFingers < 3 {
					continue
				}
				fPos3 := placement.Filter1(fPos2, k, maxDist, numBarreK < s.config.MaxBarre)
				for l, curL := range fPos3 {
					numBarreL := numBarreK + boolToInt(curL.IsBarre)
					curNoteL := curNoteK | curL.Notes
					if curNoteL == chord {
						if c := s.tryCandidate(chord, tonic.Pos.Pitch, []guitar.FingerPlacement{curJ, curK, curL}, numBarreL); c != nil {
							out = append(out, c)
						}
					}
					if numFingers < 4 {
						continue
					}
					for m := l + 1; m < len(fPos3); m++ {
						curM := fPos3[m]
						if !placement.T1(curM, curL, maxDist, numBarreL < s.config.MaxBarre) {
							continue
						}
						numBarreM := numBarreL + boolToInt(curM.IsBarre)
						curNoteM := curNoteL | curM.Notes
						if curNoteM == chord {
							if c := s.tryCandidate(chord, tonic.Pos.Pitch, []guitar.FingerPlacement{curJ, curK, curL, curM}, numBarreM); c != nil {
								out = append(out, c)
							}
						}
					}
				}
			}
		}
		return out
	}

	fPos := placement.TonicFilterFretted(notePos, tonic, maxDist)
	numBarreT := boolToInt(tonic.IsBarre)
	curNoteT := openNotes | tonic.Notes
	if curNoteT == chord {
		if c := s.tryCandidate(chord, tonic.Pos.Pitch, []guitar.FingerPlacement{tonic}, numBarreT); c != nil {
			out = append(out, c)
		}
	}
	if numFingers < 2 {
		return out
	}
	for j, curJ := range fPos {
		numBarreJ := numBarreT + boolToInt(curJ.IsBarre)
		curNoteJ := curNoteT | curJ.Notes
		if curNoteJ == chord {
			sel := orderPositions(tonic, curJ, guitar.FingerPlacement{}, guitar.FingerPlacement{}, 2)
			if c := s.tryCandidate(chord, tonic.Pos.Pitch, sel, numBarreJ); c != nil {
				out = append(out, c)
			}
		}
		if numFingers < 3 {
			continue
		}
		fPos2 := placement.Filter1(fPos, j, maxDist, numBarreJ < s.config.MaxBarre)
		for k, curK := range fPos2 {
			numBarreK := numBarreJ + boolToInt(curK.IsBarre)
			curNoteK := curNoteJ | curK.Notes
			if curNoteK == chord {
				sel := orderPositions(tonic, curJ, curK, guitar.FingerPlacement{}, 3)
				if c := s.tryCandidate(chord, tonic.Pos.Pitch, sel, numBarreK); c != nil {
					out = append(out, c)
				}
			}
			if numFingers < 4 {
				continue
			}
			for l := k + 1; l < len(fPos2); l++ {
				curL := fPos2[l]
				if !placement.T1(curL, curK, maxDist, numBarreK < s.config.MaxBarre) {
					continue
				}
				numBarreL := numBarreK + boolToInt(curL.IsBarre)
				curNoteL := curNoteK | curL.Notes
				if curNoteL == chord {
					sel := orderPositions(tonic, curJ, curK, curL, 4)
					if c := s.tryCandidate(chord, tonic.Pos.Pitch, sel, numBarreL); c != nil {
						out = append(out, c)
					}
				}
			}
		}
	}
	return out
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
