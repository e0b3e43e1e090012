package reconciler

import (
	"errors"
	"fmt"
	"sync"
)

type State int

const (
	StateLive State = iota
	StateFallback
	StateReconnecting
)

func (s State) String() string {
	switch s {
	case StateLive:
		return "LIVE"
	case StateFallback:
		return "FALLBACK"
	case StateReconnecting:
		return "RECONNECTING"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var ErrInvalidTransition = errors.New("invalid state transition")

var transitions = map[State]map[State]struct{}{
	StateLive:         {StateFallback: {}},
	StateFallback:     {StateReconnecting: {}},
	StateReconnecting: {StateLive: {}, StateFallback: {}},
}

// Machine holds the delivery mode of one client.
type Machine struct {
	mu       sync.RWMutex
	state    State
	onChange func(from, to State)
}

func NewMachine(initial State, onChange func(from, to State)) *Machine {
	return &Machine{state: initial, onChange: onChange}
}

func (m *Machine) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Transition moves to the next state or fails with ErrInvalidTransition.
func (m *Machine) Transition(to State) error {
	m.mu.Lock()
	from := m.state
	if _, ok := transitions[from][to]; !ok {
		m.mu.Unlock()
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	m.state = to
	m.mu.Unlock()

	if m.onChange != nil {
		m.onChange(from, to)
	}
	return nil
}
