package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tasktrack/internal/core/domain"
)

func TestNewPriorityBucket_Bounds(t *testing.T) {
	for _, level := range []int{0, 11, -1, 100} {
		_, err := domain.NewPriorityBucket(level)
		require.ErrorIs(t, err, domain.ErrInvalidPriority, "level %d", level)
	}

	for _, level := range []int{1, 10} {
		bucket, err := domain.NewPriorityBucket(level)
		require.NoError(t, err, "level %d", level)
		require.Equal(t, level, bucket.Level())
	}
}

func TestPriorityBucket_Bands(t *testing.T) {
	tests := []struct {
		level int
		label string
	}{
		{1, "Low"},
		{3, "Low"},
		{4, "Medium"},
		{6, "Medium"},
		{7, "High"},
		{8, "High"},
		{9, "Critical"},
		{10, "Critical"},
	}

	for _, tt := range tests {
		bucket, err := domain.NewPriorityBucket(tt.level)
		require.NoError(t, err)
		require.Equal(t, tt.label, bucket.Label(), "level %d", tt.level)
		require.NotEmpty(t, bucket.Color())
		require.NotEmpty(t, bucket.Description())
	}
}

func TestPriorityBucket_DescriptionsDifferPerLevel(t *testing.T) {
	seen := make(map[string]int)
	for level := 1; level <= 10; level++ {
		bucket, err := domain.NewPriorityBucket(level)
		require.NoError(t, err)
		desc := bucket.Description()
		if prev, dup := seen[desc]; dup {
			t.Fatalf("levels %d and %d share description %q", prev, level, desc)
		}
		seen[desc] = level
	}
}

func TestPriorityBucket_Order(t *testing.T) {
	low, err := domain.NewPriorityBucket(2)
	require.NoError(t, err)
	high, err := domain.NewPriorityBucket(9)
	require.NoError(t, err)

	require.True(t, low.Less(high))
	require.False(t, high.Less(low))
	require.Equal(t, -1, low.Compare(high))
	require.Equal(t, 1, high.Compare(low))
	require.Equal(t, 0, low.Compare(low))
}
