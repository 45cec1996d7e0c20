package dataset

import (
	"context"
	"testing"

	"github.com/pbanos/c45/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowSample(t *testing.T) {
	ds := New([]string{"Y", "X", "W"}, [][]string{{"1", "2.5", "bad"}, {"?", "1", "1"}})
	s := NewRowSample(ds, 0)

	v, err := s.ValueFor(context.Background(), feature.NewContinuousFeature("X", 7))
	require.NoError(t, err)
	assert.Equal(t, 2.5, v, "features are looked up by name")

	v, err = s.ValueFor(context.Background(), feature.NewContinuousFeature("W", 2))
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	_, err = s.ValueFor(context.Background(), feature.NewContinuousFeature("Z", 0))
	assert.Error(t, err)

	y, ok := s.Target(0)
	assert.True(t, ok)
	assert.Equal(t, 1, y)
	_, ok = NewRowSample(ds, 1).Target(0)
	assert.False(t, ok)
}
