package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestNewWayPoint(t *testing.T) {
	t.Parallel()

	w := NewWayPoint()
	assert.Equal(t, float32(-1), w.TimestampSec)
	assert.Equal(t, r3.Vec{}, w.Direction)
	assert.Equal(t, TagNone, w.Tag)
}

func TestWayPointLess(t *testing.T) {
	t.Parallel()

	a := WayPoint{TimestampSec: 1.0}
	b := WayPoint{TimestampSec: 2.0}
	same := WayPoint{TimestampSec: 1.0, Tag: TagGoal}

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	// Equal timestamps are equivalent: neither orders before the other.
	assert.False(t, a.Less(same))
	assert.False(t, same.Less(a))
}

func TestWayPointsSort(t *testing.T) {
	t.Parallel()

	traj := WayPoints{
		{TimestampSec: 3, Position: r3.Vec{X: 3}},
		{TimestampSec: 1, Position: r3.Vec{X: 1}},
		{TimestampSec: 2, Position: r3.Vec{X: 2}, Tag: TagKeyFrame},
		{TimestampSec: 2, Position: r3.Vec{X: 2.5}, Tag: TagStop},
	}
	traj.Sort()

	got := make([]float32, len(traj))
	for i, w := range traj {
		got[i] = w.TimestampSec
	}
	assert.Equal(t, []float32{1, 2, 2, 3}, got)
	// Stable: equal timestamps keep input order.
	assert.Equal(t, TagKeyFrame, traj[1].Tag)
	assert.Equal(t, TagStop, traj[2].Tag)
}

func TestWayPointQueue(t *testing.T) {
	t.Parallel()

	var q WayPointQueue
	_, ok := q.PopWayPoint()
	assert.False(t, ok, "pop from empty queue")
	_, ok = q.Peek()
	assert.False(t, ok, "peek on empty queue")

	for _, ts := range []float32{5, 0.5, 3, -1, 2} {
		w := NewWayPoint()
		w.TimestampSec = ts
		q.PushWayPoint(w)
	}
	require.Equal(t, 5, q.Len())

	head, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, float32(-1), head.TimestampSec)

	var order []float32
	for q.Len() > 0 {
		w, ok := q.PopWayPoint()
		require.True(t, ok)
		order = append(order, w.TimestampSec)
	}
	assert.Equal(t, []float32{-1, 0.5, 2, 3, 5}, order)
}

func TestParseWayPointTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     byte
		want    WayPointTag
		name    string
		wantErr bool
	}{
		{0x00, TagNone, "none", false},
		{0x01, TagKeyFrame, "key_frame", false},
		{0x02, TagStop, "stop", false},
		{0x03, TagGoal, "goal", false},
		{0x7f, TagNone, "", true},
	}

	for _, tt := range tests {
		got, err := ParseWayPointTag(tt.raw)
		if tt.wantErr {
			assert.Error(t, err, "raw 0x%02x", tt.raw)
			assert.False(t, WayPointTag(tt.raw).IsValid())
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.name, got.String())
	}

	assert.Equal(t, "tag(0x7f)", WayPointTag(0x7f).String())
}
