package store

import (
	"context"
	"testing"

	"github.com/foomo/showcase/content"
	"github.com/foomo/showcase/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrument(t *testing.T) {
	ctx := context.Background()
	s := Instrument("test", testDocument(t))

	success := metrics.StoreOperationCounter.WithLabelValues("test", "select", "success")
	failure := metrics.StoreOperationCounter.WithLabelValues("test", "select", "error")
	before, beforeErr := testutil.ToFloat64(success), testutil.ToFloat64(failure)

	_, err := s.Select(ctx, content.CollectionVideos, Published())
	require.NoError(t, err)
	_, err = s.Select(ctx, content.Collection("nope"), nil)
	require.Error(t, err)

	assert.InDelta(t, before+1, testutil.ToFloat64(success), 0)
	assert.InDelta(t, beforeErr+1, testutil.ToFloat64(failure), 0)
}
