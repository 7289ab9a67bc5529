package music_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marcusleclerc/fretwise/music"
)

func TestChordMaskValid(t *testing.T) {
	require.True(t, music.ChordMask(0).Valid())
	require.True(t, music.ChordMask(0b111111111111).Valid())
	require.False(t, music.ChordMask(0b1000000000000).Valid())
}

func TestChordMaskHasClass(t *testing.T) {
	m := music.ChordMask(0b000010010001) // Maj: {0,4,7}
	require.True(t, m.HasClass(0))
	require.True(t, m.HasClass(4))
	require.True(t, m.HasClass(7))
	require.False(t, m.HasClass(1))
	require.False(t, m.HasClass(11))
}

func TestChordToKeyIdentity(t *testing.T) {
	maj := music.ChordMask(0b000010010001)
	out, err := music.ChordToKey(maj, 0)
	require.NoError(t, err)
	require.Equal(t, maj, out)
}

func TestChordToKeyRotation(t *testing.T) {
	maj := music.ChordMask(0b000010010001) // {0,4,7}
	eMajor, err := music.ChordToKey(maj, 4)
	require.NoError(t, err)
	for _, class := range []int{4, 8, 11} {
		require.True(t, eMajor.HasClass(class), "E major should contain class %d", class)
	}
	require.True(t, eMajor.Valid())
}

func TestChordToKeyWrapsAroundTwelve(t *testing.T) {
	// A chord with its highest bit set should wrap back into the low 12
	// bits when rotated, not leak into bit 12+.
	mask := music.ChordMask(1 << 11)
	shifted, err := music.ChordToKey(mask, 1)
	require.NoError(t, err)
	require.Equal(t, music.ChordMask(1), shifted)
}

func TestChordToKeyRejectsOutOfRangeKey(t *testing.T) {
	_, err := music.ChordToKey(music.ChordMask(1), -1)
	require.Error(t, err)
	_, err = music.ChordToKey(music.ChordMask(1), 12)
	require.Error(t, err)
}

func TestChordToKeyRejectsInvalidMask(t *testing.T) {
	_, err := music.ChordToKey(music.ChordMask(1<<12), 0)
	require.Error(t, err)
}

func TestOpenStringMask(t *testing.T) {
	tuning := music.StandardSix.Pitches // E2 A2 D3 G3 B3 E4 = 40,45,50,55,59,64
	chord := music.ChordMask(0) | 1<<4 | 1<<11
	notes := music.OpenStringMask(tuning, chord, music.Pitch(40))
	require.True(t, notes.HasClass(4))
	require.True(t, notes.HasClass(11))
	require.False(t, notes.HasClass(9))
}

func TestOpenStringMaskExcludesBelowTonic(t *testing.T) {
	tuning := music.StandardSix.Pitches
	chord := music.ChordMask(1 << 9) // A
	// Tonic above every open string's A-bearing candidate excludes it.
	notes := music.OpenStringMask(tuning, chord, music.Pitch(46))
	require.False(t, notes.HasClass(9))
}

func TestCatalogHasExpectedEntries(t *testing.T) {
	require.Len(t, music.Catalog, 39)
	require.Equal(t, "Empty", music.Catalog[0].Name)
	require.Equal(t, music.ChordMask(0), music.Catalog[0].Mask)
}

func TestCatalogKnownQuirks(t *testing.T) {
	var min6th5th, min13th music.ChordMask
	maj9count := 0
	for _, c := range music.Catalog {
		if c.Name == "Min 6th + 5th" {
			min6th5th = c.Mask
		}
		if c.Name == "Min 13th" {
			min13th = c.Mask
		}
		if c.Name == "Maj 9th" {
			maj9count++
		}
	}
	require.Equal(t, min6th5th, min13th, "Min 6th + 5th and Min 13th share a mask")
	require.Equal(t, 2, maj9count, "two catalog entries are both named Maj 9th")
}
