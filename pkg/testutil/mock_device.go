package testutil

import (
	"context"
	"sync"

	"dl100-bridge/pkg/poll"
)

// MockDevice implements poll.Device with a scripted sequence of responses.
// Responses are consumed per attribute in FIFO order; when a queue runs dry
// the device blocks until the read context expires, like a real scanner that
// stopped answering.
type MockDevice struct {
	mu      sync.Mutex
	queues  map[poll.Attribute][]response
	reads   int
	drained chan struct{}
}

type response struct {
	values []int32
	err    error
}

func NewMockDevice() *MockDevice {
	return &MockDevice{
		queues:  make(map[poll.Attribute][]response),
		drained: make(chan struct{}),
	}
}

// QueueValues schedules a successful read for attr.
func (d *MockDevice) QueueValues(attr poll.Attribute, values ...int32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.queues[attr] = append(d.queues[attr], response{values: values})
}

// QueueError schedules a failed read for attr.
func (d *MockDevice) QueueError(attr poll.Attribute, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.queues[attr] = append(d.queues[attr], response{err: err})
}

// Drained is closed once every queued response has been consumed.
func (d *MockDevice) Drained() <-chan struct{} {
	return d.drained
}

func (d *MockDevice) ReadAttribute(ctx context.Context, attr poll.Attribute) ([]int32, error) {
	d.mu.Lock()
	queue := d.queues[attr]
	if len(queue) == 0 {
		d.mu.Unlock()
		<-ctx.Done()
		return nil, ctx.Err()
	}
	next := queue[0]
	d.queues[attr] = queue[1:]
	d.reads++
	if d.empty() {
		select {
		case <-d.drained:
		default:
			close(d.drained)
		}
	}
	d.mu.Unlock()
	return next.values, next.err
}

func (d *MockDevice) empty() bool {
	for _, q := range d.queues {
		if len(q) > 0 {
			return false
		}
	}
	return true
}

// Reads returns how many scripted responses were consumed.
func (d *MockDevice) Reads() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.reads
}

var _ poll.Device = (*MockDevice)(nil)
