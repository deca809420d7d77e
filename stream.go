// stream.go
package qsim

import (
	"sync"
	"time"
)

/*
StreamMetrics tracks delivery behavior of a trajectory stream.

Collects statistical information about the stream's operation, covering
delivered and dropped points and the current subscriber count.
*/
type StreamMetrics struct {
	PointsSent        int64
	PointsDropped     int64
	ActiveSubscribers int
	LastPublishTime   time.Time
}

/*
TrajectoryStream fans sampled evolution points out to subscribers while
a run is still in flight. Delivery is non-blocking: a subscriber that
stops draining its channel loses points, counted in the metrics, and
the producing worker never stalls behind a slow consumer.

Key features:
  - Live fan-out of trajectory samples
  - Non-blocking delivery with drop accounting
  - Subscriber management
  - Metrics collection
*/
type TrajectoryStream struct {
	mu sync.RWMutex

	ID          string
	subscribers map[string]chan TrajectoryPoint
	metrics     *StreamMetrics
	bufferSize  int
}

/*
NewTrajectoryStream creates a stream with the given per-subscriber
channel buffer. Buffers below 1 fall back to 64.

Parameters:
  - id: Unique identifier for the stream
  - bufferSize: Buffer size for each subscriber channel

Returns:
  - *TrajectoryStream: A new stream instance
*/
func NewTrajectoryStream(id string, bufferSize int) *TrajectoryStream {
	if bufferSize < 1 {
		bufferSize = 64
	}
	return &TrajectoryStream{
		ID:          id,
		subscribers: make(map[string]chan TrajectoryPoint),
		metrics:     &StreamMetrics{},
		bufferSize:  bufferSize,
	}
}

/*
Subscribe registers a consumer and returns its receive channel.

Thread-safe: This method uses mutual exclusion to ensure safe concurrent access.
*/
func (ts *TrajectoryStream) Subscribe(subscriberID string) chan TrajectoryPoint {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	ch := make(chan TrajectoryPoint, ts.bufferSize)
	ts.subscribers[subscriberID] = ch
	ts.metrics.ActiveSubscribers++
	return ch
}

/*
Unsubscribe removes a consumer, closing its channel.

Thread-safe: This method uses mutual exclusion to ensure safe concurrent access.
*/
func (ts *TrajectoryStream) Unsubscribe(subscriberID string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ch, exists := ts.subscribers[subscriberID]; exists {
		close(ch)
		delete(ts.subscribers, subscriberID)
		ts.metrics.ActiveSubscribers--
	}
}

/*
Publish offers a point to every subscriber with a non-blocking write.
A full subscriber channel drops the point for that subscriber only.

Thread-safe: This method uses mutual exclusion to ensure safe concurrent access.
*/
func (ts *TrajectoryStream) Publish(point TrajectoryPoint) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	for _, ch := range ts.subscribers {
		select {
		case ch <- point:
			ts.metrics.PointsSent++
		default:
			// Channel full - point dropped
			ts.metrics.PointsDropped++
		}
	}
	ts.metrics.LastPublishTime = time.Now()
}

/*
Stats returns a copy of the delivery counters.

Thread-safe: This method uses read-lock to ensure safe concurrent access.
*/
func (ts *TrajectoryStream) Stats() StreamMetrics {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return *ts.metrics
}

/*
Close shuts the stream down, closing every subscriber channel.

Thread-safe: This method uses mutual exclusion to ensure safe concurrent access.
*/
func (ts *TrajectoryStream) Close() {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	for _, ch := range ts.subscribers {
		close(ch)
	}
	ts.subscribers = nil
}
