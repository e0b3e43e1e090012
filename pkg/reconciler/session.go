package reconciler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

const (
	defaultConnectTimeout    = 5 * time.Second
	defaultReconnectInterval = 10 * time.Second
	defaultCatchUpTimeout    = 10 * time.Second
	defaultCatchUpOverlap    = 5 * time.Second
	defaultPollInterval      = 3 * time.Second
)

// LiveTransport is the push channel. ctx passed to Connect bounds only the
// handshake and the returned channel is closed when the connection drops.
// Close drops the current connection; Connect may be called again after it.
type LiveTransport interface {
	Connect(ctx context.Context) (<-chan Item, error)
	Close() error
}

type PollResult struct {
	Items     []Item
	Removed   []string
	Timestamp int64
	Available bool
}

type Poller interface {
	Poll(ctx context.Context, sub Subscription, since int64) (*PollResult, error)
}

// Subscription is one polled scope. Scope is the key live items of the same
// scope carry; it lets live traffic advance the poll cursor.
type Subscription struct {
	Action   string
	ScopeID  string
	Scope    string
	Interval time.Duration
	Since    int64
}

type Config struct {
	ConnectTimeout    time.Duration
	ReconnectInterval time.Duration
	CatchUpTimeout    time.Duration
	// CatchUpOverlap is subtracted from live timestamps before they move the
	// cursor, so a push lost during the drop is still fetched.
	CatchUpOverlap time.Duration
	// ScopeLimit and TombstoneLimit bound the merged state; zero keeps the
	// merger defaults.
	ScopeLimit     int
	TombstoneLimit int

	// OnItem receives every new entity version, patch and signal once.
	OnItem        func(Item)
	OnRemove      func(id string)
	OnStateChange func(from, to State)
	OnError       func(error)
}

type subscriptionState struct {
	Subscription
	cursor  int64
	nextDue time.Time
	stopped bool
}

// Session keeps one client's view of its subscriptions up to date, switching
// between the live channel and polling.
type Session struct {
	live    LiveTransport
	poller  Poller
	cfg     Config
	machine *Machine
	merger  *Merger
	subs    []*subscriptionState

	cancel    context.CancelFunc
	done      chan struct{}
	startOnce sync.Once
	closeOnce sync.Once
}

func NewSession(live LiveTransport, poller Poller, subs []Subscription, cfg Config) *Session {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = defaultConnectTimeout
	}
	if cfg.ReconnectInterval <= 0 {
		cfg.ReconnectInterval = defaultReconnectInterval
	}
	if cfg.CatchUpTimeout <= 0 {
		cfg.CatchUpTimeout = defaultCatchUpTimeout
	}
	if cfg.CatchUpOverlap < 0 {
		cfg.CatchUpOverlap = 0
	} else if cfg.CatchUpOverlap == 0 {
		cfg.CatchUpOverlap = defaultCatchUpOverlap
	}

	states := make([]*subscriptionState, len(subs))
	for i, sub := range subs {
		if sub.Interval <= 0 {
			sub.Interval = defaultPollInterval
		}
		states[i] = &subscriptionState{Subscription: sub, cursor: sub.Since}
	}

	return &Session{
		live:    live,
		poller:  poller,
		cfg:     cfg,
		machine: NewMachine(StateLive, cfg.OnStateChange),
		merger:  NewMerger(WithScopeLimit(cfg.ScopeLimit), WithTombstoneLimit(cfg.TombstoneLimit)),
		subs:    states,
		done:    make(chan struct{}),
	}
}

func (s *Session) State() State {
	return s.machine.State()
}

// Items returns the merged, ordered items of one scope.
func (s *Session) Items(scope string) []Item {
	return s.merger.Items(scope)
}

// Start connects and keeps the session running until Close or ctx is done.
func (s *Session) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		ctx, s.cancel = context.WithCancel(ctx)
		go s.run(ctx)
	})
}

// Close stops every timer and the live transport and waits for the session
// loop to exit.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		// a session that was never started has no loop to wait for
		s.startOnce.Do(func() { close(s.done) })
		if s.cancel != nil {
			s.cancel()
		}
		<-s.done
	})
}

func (s *Session) run(ctx context.Context) {
	defer close(s.done)
	defer func() { _ = s.live.Close() }()

	events, err := s.connect(ctx)
	if err != nil {
		s.reportError(fmt.Errorf("live connect failed: %w", err))
		s.transition(StateFallback)
	} else {
		// resume from the cursors the caller passed in
		s.catchUpWhileLive(ctx)
	}

	for ctx.Err() == nil {
		switch s.machine.State() {
		case StateLive:
			events = s.runLive(ctx, events)
		case StateFallback:
			events = s.runFallback(ctx)
		default:
			return
		}
	}
}

func (s *Session) runLive(ctx context.Context, events <-chan Item) <-chan Item {
	for {
		select {
		case <-ctx.Done():
			return nil
		case item, ok := <-events:
			if !ok {
				s.reportError(errors.New("live connection dropped"))
				s.transition(StateFallback)
				return nil
			}
			s.advanceFromLive(item)
			s.deliver([]Item{item}, nil)
		}
	}
}

func (s *Session) runFallback(ctx context.Context) <-chan Item {
	now := time.Now()
	for _, sub := range s.subs {
		sub.nextDue = now
	}

	reconnect := time.NewTimer(s.cfg.ReconnectInterval)
	defer reconnect.Stop()

	for {
		poll := time.NewTimer(s.untilNextPoll())
		select {
		case <-ctx.Done():
			poll.Stop()
			return nil
		case <-poll.C:
			s.pollDue(ctx)
		case <-reconnect.C:
			poll.Stop()
			events, err := s.connect(ctx)
			if err != nil {
				s.reportError(fmt.Errorf("live reconnect failed: %w", err))
				reconnect.Reset(s.cfg.ReconnectInterval)
				continue
			}
			s.transition(StateReconnecting)
			if err := s.catchUp(ctx); err != nil {
				s.reportError(fmt.Errorf("catch-up failed: %w", err))
				_ = s.live.Close()
				s.transition(StateFallback)
				reconnect.Reset(s.cfg.ReconnectInterval)
				continue
			}
			s.transition(StateLive)
			return events
		}
	}
}

func (s *Session) connect(ctx context.Context) (<-chan Item, error) {
	connectCtx, cancel := context.WithTimeout(ctx, s.cfg.ConnectTimeout)
	defer cancel()
	return s.live.Connect(connectCtx)
}

// catchUp polls every subscription once from its cursor. Any failure aborts
// the whole catch-up.
func (s *Session) catchUp(ctx context.Context) error {
	catchUpCtx, cancel := context.WithTimeout(ctx, s.cfg.CatchUpTimeout)
	defer cancel()

	for _, sub := range s.subs {
		if sub.stopped {
			continue
		}
		if err := s.pollOne(catchUpCtx, sub); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) catchUpWhileLive(ctx context.Context) {
	for _, sub := range s.subs {
		if sub.stopped || sub.cursor == 0 {
			continue
		}
		if err := s.pollOne(ctx, sub); err != nil {
			s.reportError(fmt.Errorf("initial catch-up of %s failed: %w", sub.Action, err))
		}
	}
}

func (s *Session) pollDue(ctx context.Context) {
	now := time.Now()
	for _, sub := range s.subs {
		if sub.stopped || now.Before(sub.nextDue) {
			continue
		}
		if err := s.pollOne(ctx, sub); err != nil {
			s.reportError(fmt.Errorf("poll of %s failed: %w", sub.Action, err))
		}
		sub.nextDue = now.Add(sub.Interval)
	}
}

func (s *Session) pollOne(ctx context.Context, sub *subscriptionState) error {
	result, err := s.poller.Poll(ctx, sub.Subscription, sub.cursor)
	if err != nil {
		return err
	}
	if !result.Available {
		sub.stopped = true
		return nil
	}

	s.deliver(result.Items, result.Removed)
	if result.Timestamp > sub.cursor {
		sub.cursor = result.Timestamp
	}
	return nil
}

func (s *Session) untilNextPoll() time.Duration {
	next := time.Time{}
	for _, sub := range s.subs {
		if sub.stopped {
			continue
		}
		if next.IsZero() || sub.nextDue.Before(next) {
			next = sub.nextDue
		}
	}
	if next.IsZero() {
		return s.cfg.ReconnectInterval
	}
	if d := time.Until(next); d > 0 {
		return d
	}
	return 0
}

func (s *Session) advanceFromLive(item Item) {
	cursor := item.version().Add(-s.cfg.CatchUpOverlap).UnixMilli()
	for _, sub := range s.subs {
		if sub.Scope != "" && sub.Scope == item.Scope && cursor > sub.cursor {
			sub.cursor = cursor
		}
	}
}

func (s *Session) deliver(items []Item, removedIDs []string) {
	fresh, removed := s.merger.Merge(items)
	removed = append(removed, s.merger.Remove(removedIDs)...)

	if s.cfg.OnItem != nil {
		for _, item := range fresh {
			s.cfg.OnItem(item)
		}
	}
	if s.cfg.OnRemove != nil {
		for _, id := range removed {
			s.cfg.OnRemove(id)
		}
	}
}

func (s *Session) transition(to State) {
	if err := s.machine.Transition(to); err != nil {
		s.reportError(err)
	}
}

func (s *Session) reportError(err error) {
	if s.cfg.OnError != nil {
		s.cfg.OnError(err)
	}
}
