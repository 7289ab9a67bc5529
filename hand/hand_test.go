package hand_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marcusleclerc/fretwise/guitar"
	"github.com/marcusleclerc/fretwise/hand"
)

func TestNewRejectsNoFingersEnabled(t *testing.T) {
	_, err := hand.New(0, [6]float64{}, [6]float64{})
	require.Error(t, err)
}

func TestNewRejectsMaxLessThanMin(t *testing.T) {
	min := [6]float64{10, 10, 10, 10, 10, 10}
	max := [6]float64{5, 10, 10, 10, 10, 10}
	_, err := hand.New(0b1111, min, max)
	require.Error(t, err)
}

func TestNewComputesNumFingers(t *testing.T) {
	min := [6]float64{0, 0, 0, 0, 0, 0}
	max := [6]float64{50, 50, 50, 50, 50, 50}
	m, err := hand.New(0b0011, min, max)
	require.NoError(t, err)
	require.Equal(t, 2, m.NumFingers())
	require.True(t, m.Enabled(0))
	require.True(t, m.Enabled(1))
	require.False(t, m.Enabled(2))
}

func TestNewComputesMaxSearchDist(t *testing.T) {
	min := [6]float64{0, 0, 0, 0, 0, 0}
	max := [6]float64{10, 20, 30, 40, 50, 25}
	m, err := hand.New(0b1111, min, max)
	require.NoError(t, err)
	require.Equal(t, 50.0, m.MaxSearchDist())
}

func placementAt(str int, x, y float64) guitar.FingerPlacement {
	return guitar.FingerPlacement{Pos: guitar.FretPosition{String: str, X: x, Y: y}}
}

func TestComfortWithinBandScoresOne(t *testing.T) {
	min := [6]float64{0, 0, 0, 0, 0, 0}
	max := [6]float64{100, 100, 100, 100, 100, 100}
	m, err := hand.New(0b1111, min, max)
	require.NoError(t, err)

	placements := []guitar.FingerPlacement{placementAt(0, 0, 0), placementAt(1, 10, 0)}
	score := m.Comfort(placements, 4) // assignment id 4 = {0,1}
	require.InDelta(t, 1.0, score, 1e-9)
}

func TestComfortPenalizesOverstretch(t *testing.T) {
	min := [6]float64{0, 0, 0, 0, 0, 0}
	max := [6]float64{10, 10, 10, 10, 10, 10}
	m, err := hand.New(0b1111, min, max)
	require.NoError(t, err)

	placements := []guitar.FingerPlacement{placementAt(0, 0, 0), placementAt(1, 100, 0)}
	score := m.Comfort(placements, 4)
	require.Less(t, score, 1.0)
}

func TestComfortPenalizesCramping(t *testing.T) {
	min := [6]float64{50, 50, 50, 50, 50, 50}
	max := [6]float64{100, 100, 100, 100, 100, 100}
	m, err := hand.New(0b1111, min, max)
	require.NoError(t, err)

	placements := []guitar.FingerPlacement{placementAt(0, 0, 0), placementAt(1, 1, 0)}
	score := m.Comfort(placements, 4)
	require.Less(t, score, 1.0)
}

func TestFindBestAssignmentRejectsWrongCardinality(t *testing.T) {
	min := [6]float64{0, 0, 0, 0, 0, 0}
	max := [6]float64{100, 100, 100, 100, 100, 100}
	m, err := hand.New(0b1111, min, max)
	require.NoError(t, err)

	_, id := m.FindBestAssignment(make([]guitar.FingerPlacement, 0))
	require.Equal(t, hand.Invalid, id)

	_, id = m.FindBestAssignment(make([]guitar.FingerPlacement, 5))
	require.Equal(t, hand.Invalid, id)
}

func TestFindBestAssignmentRejectsDisabledFingers(t *testing.T) {
	min := [6]float64{0, 0, 0, 0, 0, 0}
	max := [6]float64{100, 100, 100, 100, 100, 100}
	m, err := hand.New(0b0011, min, max) // only fingers 0 and 1 enabled
	require.NoError(t, err)

	placements := []guitar.FingerPlacement{placementAt(0, 0, 0), placementAt(1, 10, 0), placementAt(2, 20, 0)}
	_, id := m.FindBestAssignment(placements)
	require.Equal(t, hand.Invalid, id, "every 3-finger assignment needs finger 2 or 3, neither enabled")
}

func TestFindBestAssignmentPicksAnEnabledMatchingSubset(t *testing.T) {
	min := [6]float64{0, 0, 0, 0, 0, 0}
	max := [6]float64{100, 100, 100, 100, 100, 100}
	m, err := hand.New(0b1111, min, max)
	require.NoError(t, err)

	placements := []guitar.FingerPlacement{placementAt(0, 0, 0), placementAt(1, 10, 0)}
	score, id := m.FindBestAssignment(placements)
	require.NotEqual(t, hand.Invalid, id)
	require.Len(t, hand.AssignmentTable[id], 2)
	require.InDelta(t, 1.0, score, 1e-9)
}
