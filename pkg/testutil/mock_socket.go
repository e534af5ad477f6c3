package testutil

import (
	"sync"

	"dl100-bridge/pkg/pubsub"
)

// MockSocket implements pubsub.Socket and records every call for assertions.
type MockSocket struct {
	mu sync.Mutex

	BindCalls  []string
	Frames     [][]byte
	CloseCalls int

	BindErr  error
	SendErr  error
	CloseErr error
}

func NewMockSocket() *MockSocket { return &MockSocket{} }

func (m *MockSocket) Bind(addr string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BindCalls = append(m.BindCalls, addr)
	return m.BindErr
}

func (m *MockSocket) Send(payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SendErr != nil {
		return m.SendErr
	}
	frame := make([]byte, len(payload))
	copy(frame, payload)
	m.Frames = append(m.Frames, frame)
	return nil
}

func (m *MockSocket) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CloseCalls++
	return m.CloseErr
}

// SentFrames returns a copy of everything sent so far.
func (m *MockSocket) SentFrames() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.Frames))
	copy(out, m.Frames)
	return out
}

// Closes returns how many times Close was called.
func (m *MockSocket) Closes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CloseCalls
}

var _ pubsub.Socket = (*MockSocket)(nil)
