package navigation

import (
	"container/heap"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// WayPointTag marks the role of a waypoint within a trajectory.
type WayPointTag byte

const (
	// TagNone is an ordinary trajectory sample.
	TagNone WayPointTag = 0x00
	// TagKeyFrame marks a sample retained as a localization key frame.
	TagKeyFrame WayPointTag = 0x01
	// TagStop marks a position where the vehicle must halt.
	TagStop WayPointTag = 0x02
	// TagGoal marks the final sample of a trajectory.
	TagGoal WayPointTag = 0x03
)

// String returns the string representation of the tag.
func (t WayPointTag) String() string {
	switch t {
	case TagNone:
		return "none"
	case TagKeyFrame:
		return "key_frame"
	case TagStop:
		return "stop"
	case TagGoal:
		return "goal"
	default:
		return fmt.Sprintf("tag(0x%02x)", byte(t))
	}
}

// IsValid returns true if the tag is a known value.
func (t WayPointTag) IsValid() bool {
	switch t {
	case TagNone, TagKeyFrame, TagStop, TagGoal:
		return true
	default:
		return false
	}
}

// ParseWayPointTag converts a raw tag byte, rejecting unknown values.
func ParseWayPointTag(b byte) (WayPointTag, error) {
	t := WayPointTag(b)
	if !t.IsValid() {
		return TagNone, fmt.Errorf("unknown waypoint tag 0x%02x", b)
	}
	return t, nil
}

// WayPoint is a timestamped pose sample on a trajectory.
type WayPoint struct {
	TimestampSec float32
	Position     r3.Vec
	Direction    r3.Vec
	Tag          WayPointTag
}

// NewWayPoint returns a waypoint with no timestamp (-1), a zero direction
// and TagNone.
func NewWayPoint() WayPoint {
	return WayPoint{TimestampSec: -1, Tag: TagNone}
}

// Less orders waypoints by timestamp ascending. It is a strict weak order.
func (w WayPoint) Less(other WayPoint) bool {
	return w.TimestampSec < other.TimestampSec
}

// WayPoints is a trajectory. It implements sort.Interface by timestamp.
type WayPoints []WayPoint

func (w WayPoints) Len() int           { return len(w) }
func (w WayPoints) Less(i, j int) bool { return w[i].Less(w[j]) }
func (w WayPoints) Swap(i, j int)      { w[i], w[j] = w[j], w[i] }

// Sort orders the trajectory by timestamp, keeping the relative order of
// samples with equal timestamps.
func (w WayPoints) Sort() {
	sort.Stable(w)
}

// WayPointQueue is a min-priority queue of waypoints keyed by timestamp.
// The zero value is an empty queue ready to use.
type WayPointQueue struct {
	items wayPointHeap
}

// PushWayPoint adds w to the queue.
func (q *WayPointQueue) PushWayPoint(w WayPoint) {
	heap.Push(&q.items, w)
}

// PopWayPoint removes and returns the earliest waypoint. ok is false when
// the queue is empty.
func (q *WayPointQueue) PopWayPoint() (w WayPoint, ok bool) {
	if q.items.Len() == 0 {
		return WayPoint{}, false
	}
	return heap.Pop(&q.items).(WayPoint), true
}

// Peek returns the earliest waypoint without removing it.
func (q *WayPointQueue) Peek() (WayPoint, bool) {
	if q.items.Len() == 0 {
		return WayPoint{}, false
	}
	return q.items[0], true
}

// Len returns the number of queued waypoints.
func (q *WayPointQueue) Len() int {
	return q.items.Len()
}

type wayPointHeap []WayPoint

func (h wayPointHeap) Len() int           { return len(h) }
func (h wayPointHeap) Less(i, j int) bool { return h[i].Less(h[j]) }
func (h wayPointHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *wayPointHeap) Push(x any) {
	*h = append(*h, x.(WayPoint))
}

func (h *wayPointHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
