package treasure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hollowmaze/treasure"
)

func TestNew_Valid(t *testing.T) {
	tr, err := treasure.New(7, 4, 10)
	require.NoError(t, err)
	assert.Equal(t, 7, tr.ID)
	assert.Equal(t, int64(4), tr.Weight)
	assert.Equal(t, int64(10), tr.Value)
	assert.InDelta(t, 2.5, tr.Ratio(), 1e-12)
}

func TestNew_RejectsNonPositiveWeight(t *testing.T) {
	_, err := treasure.New(1, 0, 10)
	assert.ErrorIs(t, err, treasure.ErrNonPositiveWeight)

	_, err = treasure.New(1, -3, 10)
	assert.ErrorIs(t, err, treasure.ErrNonPositiveWeight)
}

func TestNew_RejectsNonPositiveValue(t *testing.T) {
	_, err := treasure.New(1, 5, 0)
	assert.ErrorIs(t, err, treasure.ErrNonPositiveValue)
}

func TestGenerator_BadRanges(t *testing.T) {
	_, err := treasure.NewGenerator(treasure.WithWeightRange(5, 2))
	assert.ErrorIs(t, err, treasure.ErrBadRange)

	_, err = treasure.NewGenerator(treasure.WithWeightRange(0, 4))
	assert.ErrorIs(t, err, treasure.ErrBadRange)

	_, err = treasure.NewGenerator(treasure.WithValueRange(-1, 4))
	assert.ErrorIs(t, err, treasure.ErrBadRange)
}

func TestGenerator_DeterministicStream(t *testing.T) {
	g1, err := treasure.NewGenerator(treasure.WithSeed(42))
	require.NoError(t, err)
	g2, err := treasure.NewGenerator(treasure.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, g1.GenerateN(50), g2.GenerateN(50), "same seed must yield identical streams")
}

func TestGenerator_ZeroSeedIsFixedDefault(t *testing.T) {
	g1, err := treasure.NewGenerator()
	require.NoError(t, err)
	g2, err := treasure.NewGenerator(treasure.WithSeed(0))
	require.NoError(t, err)

	assert.Equal(t, g1.GenerateN(10), g2.GenerateN(10))
}

func TestGenerator_RespectsRangesAndIDs(t *testing.T) {
	g, err := treasure.NewGenerator(
		treasure.WithSeed(7),
		treasure.WithWeightRange(2, 5),
		treasure.WithValueRange(10, 11),
	)
	require.NoError(t, err)

	prevID := 0
	for _, tr := range g.GenerateN(200) {
		assert.GreaterOrEqual(t, tr.Weight, int64(2))
		assert.LessOrEqual(t, tr.Weight, int64(5))
		assert.GreaterOrEqual(t, tr.Value, int64(10))
		assert.LessOrEqual(t, tr.Value, int64(11))
		assert.Equal(t, prevID+1, tr.ID, "IDs must be sequential")
		prevID = tr.ID
	}
}

func TestGenerator_GenerateN_NonPositive(t *testing.T) {
	g, err := treasure.NewGenerator()
	require.NoError(t, err)
	assert.Empty(t, g.GenerateN(0))
	assert.Empty(t, g.GenerateN(-4))
}
