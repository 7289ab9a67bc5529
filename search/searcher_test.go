package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marcusleclerc/fretwise/guitar"
	"github.com/marcusleclerc/fretwise/hand"
	"github.com/marcusleclerc/fretwise/music"
	"github.com/marcusleclerc/fretwise/rater"
	"github.com/marcusleclerc/fretwise/search"
)

func acousticGuitar(t *testing.T) *guitar.Guitar {
	t.Helper()
	g, err := guitar.New(music.StandardSix.Pitches, 12, 44.45, 58.7375, 38, 620)
	require.NoError(t, err)
	return g
}

func allFingersHand(t *testing.T) *hand.Model {
	t.Helper()
	// Minimum spans stay below the ~7.4 mm nut string spacing, so two
	// fingers on adjacent strings at one fret are not scored as cramped.
	min := [6]float64{5, 5, 5, 5, 5, 5}
	max := [6]float64{80, 80, 80, 80, 80, 80}
	h, err := hand.New(0b1111, min, max)
	require.NoError(t, err)
	return h
}

func positionsByString(fps []guitar.FretPosition) map[int]guitar.FretPosition {
	m := make(map[int]guitar.FretPosition, len(fps))
	for _, p := range fps {
		m[p.String] = p
	}
	return m
}

func TestGenerateEmptyChordReturnsNoResultsOrErrors(t *testing.T) {
	s := search.New(acousticGuitar(t), allFingersHand(t), rater.Default(), search.DefaultConfig())
	results, err := s.Generate(0, 0, 1)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestGenerateEMajorOpenFindsStandardOpenShape(t *testing.T) {
	g := acousticGuitar(t)
	s := search.New(g, allFingersHand(t), rater.Default(), search.DefaultConfig())

	majGeneric := music.ChordMask(0b000010010001)
	results, err := s.Generate(majGeneric, 4, 1) // E major, key 4
	require.NoError(t, err)
	require.NotEmpty(t, results)

	want := map[int]int{0: 0, 1: 2, 2: 2, 3: 1, 4: 0, 5: 0}
	var found bool
	for _, f := range results {
		if f.MuteCount != 0 {
			continue
		}
		byStr := positionsByString(f.Positions)
		matches := true
		for str, fret := range want {
			if byStr[str].IsMuted() || byStr[str].Fret != fret {
				matches = false
				break
			}
		}
		if matches {
			found = true
			break
		}
	}
	require.True(t, found, "expected the standard open E-major shape (0,0)(1,2)(2,2)(3,1)(4,0)(5,0) among results")
}

func TestGenerateAMinorOpenMutesLowEWithoutPenalty(t *testing.T) {
	g := acousticGuitar(t)
	s := search.New(g, allFingersHand(t), rater.Default(), search.DefaultConfig())

	minGeneric := music.ChordMask(0b000010001001)
	results, err := s.Generate(minGeneric, 9, 1) // A minor, key 9
	require.NoError(t, err)
	require.NotEmpty(t, results)

	want := map[int]int{1: 0, 2: 2, 3: 2, 4: 1, 5: 0}
	var found bool
	for _, f := range results {
		// The low E below the tonic is muted but, being below the lowest
		// sounding string, isn't counted against MuteCount.
		if f.MuteCount != 0 || !f.Positions[0].IsMuted() {
			continue
		}
		byStr := positionsByString(f.Positions)
		matches := true
		for str, fret := range want {
			if byStr[str].IsMuted() || byStr[str].Fret != fret {
				matches = false
				break
			}
		}
		if matches {
			found = true
			break
		}
	}
	require.True(t, found, "expected the standard open A-minor shape with a muted (uncounted) low E")
}

func TestGenerateFMajorBarreCoversAllSixStrings(t *testing.T) {
	g := acousticGuitar(t)
	cfg := search.DefaultConfig()
	cfg.MaxBarre = 1
	cfg.BarreEnabled = true
	s := search.New(g, allFingersHand(t), rater.Default(), cfg)

	majGeneric := music.ChordMask(0b000010010001)
	results, err := s.Generate(majGeneric, 5, 1) // F major, key 5

	require.NoError(t, err)
	require.NotEmpty(t, results)

	// A barre at fret 1 leaves no string below it, so every string sounds
	// and every fret is >= 1.
	var sawCleanBarreShape bool
	for _, f := range results {
		if f.MuteCount != 0 || f.MinFret != 1 {
			continue
		}
		clean := true
		for _, p := range f.Positions {
			if p.IsMuted() || p.Fret < 1 {
				clean = false
				break
			}
		}
		if clean {
			sawCleanBarreShape = true
			break
		}
	}
	require.True(t, sawCleanBarreShape, "expected at least one all-strings-sounding F-major shape anchored at fret 1 or above")
}

func TestGeneratePowerChordRestrictedToTwoFingersUsesOnlyThosePlacements(t *testing.T) {
	g := acousticGuitar(t)
	min := [6]float64{20, 20, 20, 20, 20, 20}
	max := [6]float64{80, 80, 80, 80, 80, 80}
	h, err := hand.New(0b0011, min, max) // only fingers 0 and 1 enabled
	require.NoError(t, err)

	s := search.New(g, h, rater.Default(), search.DefaultConfig())

	power := music.ChordMask(0b000010000001)
	results, err := s.Generate(power, 0, 1) // C power chord, key 0
	require.NoError(t, err)

	for _, f := range results {
		require.LessOrEqual(t, len(f.Selected), 2, "a two-fingered hand cannot produce a 3- or 4-placement fingering")
	}
}

func TestGenerateIsDeterministicSingleThreaded(t *testing.T) {
	g := acousticGuitar(t)
	s := search.New(g, allFingersHand(t), rater.Default(), search.DefaultConfig())
	majGeneric := music.ChordMask(0b000010010001)

	first, err := s.Generate(majGeneric, 4, 1)
	require.NoError(t, err)
	second, err := s.Generate(majGeneric, 4, 1)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		require.Equal(t, first[i].Score, second[i].Score)
		require.Equal(t, first[i].Positions, second[i].Positions)
	}
}

func TestGenerateResultsAllProduceRequestedChord(t *testing.T) {
	g := acousticGuitar(t)
	s := search.New(g, allFingersHand(t), rater.Default(), search.DefaultConfig())
	minGeneric := music.ChordMask(0b000010001001)

	key := 2
	results, err := s.Generate(minGeneric, key, 2)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	wantChord, err := music.ChordToKey(minGeneric, key)
	require.NoError(t, err)

	for _, f := range results {
		var produced music.ChordMask
		for _, p := range f.Positions {
			if !p.IsMuted() {
				produced |= 1 << uint(p.Pitch.Class())
			}
		}
		require.Equal(t, wantChord, produced)
	}
}

func TestSortDescendingByScore(t *testing.T) {
	g := acousticGuitar(t)
	s := search.New(g, allFingersHand(t), rater.Default(), search.DefaultConfig())
	majGeneric := music.ChordMask(0b000010010001)

	results, err := s.Generate(majGeneric, 4, 2)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	search.SortDescendingByScore(results)
	for i := 1; i < len(results); i++ {
		require.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestOpenFingeringIsUnrated(t *testing.T) {
	g := acousticGuitar(t)
	s := search.New(g, allFingersHand(t), rater.Default(), search.DefaultConfig())
	f := s.OpenFingering()
	require.NotNil(t, f)
	require.Equal(t, 0.0, f.Score)
}
