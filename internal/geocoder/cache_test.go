package geocoder

import (
	"context"
	"errors"
	"testing"

	"geotag-api/internal/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingDescriber records how often each token reaches the inner describer.
type countingDescriber struct {
	calls  map[string]int
	places map[string]*Place
	err    error
}

func (d *countingDescriber) Describe(ctx context.Context, token string) (*Place, error) {
	if d.calls == nil {
		d.calls = make(map[string]int)
	}
	d.calls[token]++
	if d.err != nil {
		return nil, d.err
	}
	return d.places[token], nil
}

func TestCachedDescriber_SingleUpstreamCallPerToken(t *testing.T) {
	inner := &countingDescriber{
		places: map[string]*Place{
			"#geo9c3xgv": {City: "London", Formatted: "London, United Kingdom"},
		},
	}
	cached := NewCachedDescriber(inner, 10, observability.NewMetricsForTesting())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		place, err := cached.Describe(ctx, "#geo9c3xgv")
		require.NoError(t, err)
		require.NotNil(t, place)
		assert.Equal(t, "London", place.City)
	}

	assert.Equal(t, 1, inner.calls["#geo9c3xgv"])
}

func TestCachedDescriber_KeyIsCanonicalToken(t *testing.T) {
	inner := &countingDescriber{
		places: map[string]*Place{
			"#GEO9C3XGV": {City: "London"},
			"#geo9c3xgv": {City: "London"},
		},
	}
	cached := NewCachedDescriber(inner, 10, observability.NewMetricsForTesting())
	ctx := context.Background()

	_, err := cached.Describe(ctx, "#GEO9C3XGV")
	require.NoError(t, err)
	_, err = cached.Describe(ctx, "#geo9c3xgv")
	require.NoError(t, err)

	// Case variants of the same token share one cache entry.
	total := inner.calls["#GEO9C3XGV"] + inner.calls["#geo9c3xgv"]
	assert.Equal(t, 1, total)
}

func TestCachedDescriber_CachesEmptyResult(t *testing.T) {
	inner := &countingDescriber{}
	cached := NewCachedDescriber(inner, 10, observability.NewMetricsForTesting())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		place, err := cached.Describe(ctx, "#geo222222")
		require.NoError(t, err)
		assert.Nil(t, place)
	}

	assert.Equal(t, 1, inner.calls["#geo222222"])
}

func TestCachedDescriber_ErrorsAreNotCached(t *testing.T) {
	inner := &countingDescriber{err: errors.New("upstream down")}
	cached := NewCachedDescriber(inner, 10, observability.NewMetricsForTesting())
	ctx := context.Background()

	_, err := cached.Describe(ctx, "#geo9c3xgv")
	assert.Error(t, err)
	_, err = cached.Describe(ctx, "#geo9c3xgv")
	assert.Error(t, err)

	assert.Equal(t, 2, inner.calls["#geo9c3xgv"])
}

func TestCachedDescriber_EvictsLeastRecentlyUsed(t *testing.T) {
	inner := &countingDescriber{
		places: map[string]*Place{
			"#geo222222": {City: "A"},
			"#geo333333": {City: "B"},
			"#geo444444": {City: "C"},
		},
	}
	cached := NewCachedDescriber(inner, 2, observability.NewMetricsForTesting())
	ctx := context.Background()

	_, _ = cached.Describe(ctx, "#geo222222")
	_, _ = cached.Describe(ctx, "#geo333333")
	// Touch the first entry so the second becomes least recently used.
	_, _ = cached.Describe(ctx, "#geo222222")
	// Inserting a third entry evicts the second.
	_, _ = cached.Describe(ctx, "#geo444444")
	_, _ = cached.Describe(ctx, "#geo333333")

	assert.Equal(t, 1, inner.calls["#geo222222"])
	assert.Equal(t, 2, inner.calls["#geo333333"])
	assert.Equal(t, 1, inner.calls["#geo444444"])
}
