package reconciler

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	deletedSuffix = ".deleted"

	defaultScopeLimit     = 1000
	defaultTombstoneLimit = 10000
	defaultSignalLimit    = 1000
)

// Kind says how an item relates to the entities the merger keeps.
type Kind int

const (
	// KindEntity is a full copy of the entity ID.
	KindEntity Kind = iota
	// KindPatch is partial state of the entity ID, such as its reactions. It
	// is kept next to the entity and never replaces it.
	KindPatch
	// KindSignal is a notice about ID, such as a read receipt. It is delivered
	// once and kept in no scope.
	KindSignal
)

// Item is one change as seen by the client, pushed or polled.
type Item struct {
	ID    string
	Kind  Kind
	Type  string
	Scope string
	// Timestamp orders the item inside its scope. For entities and their
	// patches it is the creation time of the entity.
	Timestamp time.Time
	// Version is when this state was produced. Zero means Timestamp.
	Version time.Time
	Data    json.RawMessage
	// Patches holds the newest patch data per patch type. Only items returned
	// by Items carry it.
	Patches map[string]json.RawMessage
}

func (i Item) isRemoval() bool {
	return strings.HasSuffix(i.Type, deletedSuffix)
}

func (i Item) version() time.Time {
	if i.Version.IsZero() {
		return i.Timestamp
	}
	return i.Version
}

func less(a, b Item) bool {
	if !a.Timestamp.Equal(b.Timestamp) {
		return a.Timestamp.Before(b.Timestamp)
	}
	if a.ID != b.ID {
		return a.ID < b.ID
	}
	return a.version().Before(b.version())
}

type MergerOption func(*Merger)

// WithScopeLimit caps the entities kept per scope. The oldest are forgotten
// first and copies at or before the newest forgotten one are ignored.
func WithScopeLimit(n int) MergerOption {
	return func(m *Merger) {
		if n > 0 {
			m.scopeLimit = n
		}
	}
}

// WithTombstoneLimit caps how many removed ids are remembered.
func WithTombstoneLimit(n int) MergerOption {
	return func(m *Merger) {
		if n > 0 {
			m.removed = newRecentSet(n)
		}
	}
}

// Merger folds live and polled items into one ordered stream per scope. An
// entity is delivered once per version: a copy with the same or an older
// version is dropped, a newer one replaces it in place.
type Merger struct {
	mu         sync.Mutex
	scopeLimit int
	latest     map[string]Item
	patches    map[string]map[string]Item
	scopes     map[string][]Item
	floors     map[string]Item
	removed    *recentSet
	signals    *recentSet
}

func NewMerger(opts ...MergerOption) *Merger {
	m := &Merger{
		scopeLimit: defaultScopeLimit,
		latest:     make(map[string]Item),
		patches:    make(map[string]map[string]Item),
		scopes:     make(map[string][]Item),
		floors:     make(map[string]Item),
		removed:    newRecentSet(defaultTombstoneLimit),
		signals:    newRecentSet(defaultSignalLimit),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Merge returns the items that were not seen before, ordered by timestamp and
// id, and the ids they removed.
func (m *Merger) Merge(items []Item) ([]Item, []string) {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })

	m.mu.Lock()
	defer m.mu.Unlock()

	var (
		fresh   []Item
		removed []string
	)
	for _, item := range sorted {
		switch {
		case item.isRemoval():
			if m.removeLocked(item.ID) {
				removed = append(removed, item.ID)
			}
		case item.Kind == KindSignal:
			if m.signals.add(signalKey(item)) {
				fresh = append(fresh, item)
			}
		case m.removed.has(item.ID):
		case item.Kind == KindPatch:
			if m.patchLocked(item) {
				fresh = append(fresh, item)
			}
		default:
			if m.storeLocked(item) {
				fresh = append(fresh, item)
			}
		}
	}

	return fresh, removed
}

// Remove drops ids from every scope and ignores them from now on. It returns
// the ids that were not removed before.
func (m *Merger) Remove(ids []string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed []string
	for _, id := range ids {
		if m.removeLocked(id) {
			removed = append(removed, id)
		}
	}
	return removed
}

// Items returns the ordered entities of scope with their current patches.
func (m *Merger) Items(scope string) []Item {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Item, len(m.scopes[scope]))
	copy(out, m.scopes[scope])
	for i := range out {
		byType := m.patches[out[i].ID]
		if len(byType) == 0 {
			continue
		}
		out[i].Patches = make(map[string]json.RawMessage, len(byType))
		for typ, patch := range byType {
			out[i].Patches[typ] = patch.Data
		}
	}
	return out
}

func (m *Merger) storeLocked(item Item) bool {
	if prev, ok := m.latest[item.ID]; ok {
		if !item.version().After(prev.version()) {
			return false
		}
		m.dropFromScope(prev)
	} else if floor, ok := m.floors[item.Scope]; ok && !less(floor, item) {
		return false
	}

	item.Patches = nil
	m.latest[item.ID] = item

	list := m.scopes[item.Scope]
	i := sort.Search(len(list), func(i int) bool { return less(item, list[i]) })
	list = append(list, Item{})
	copy(list[i+1:], list[i:])
	list[i] = item
	m.scopes[item.Scope] = list

	// a newer full copy already includes older patches
	for typ, patch := range m.patches[item.ID] {
		if !patch.version().After(item.version()) {
			delete(m.patches[item.ID], typ)
		}
	}

	m.pruneScope(item.Scope)
	return true
}

// patchLocked keeps a patch of a known entity when it is newer than both the
// entity and the previous patch of its type. Patches of unknown entities are
// delivered without being kept; the entity's own copy carries that state.
func (m *Merger) patchLocked(item Item) bool {
	byType := m.patches[item.ID]
	if prev, ok := byType[item.Type]; ok && !item.version().After(prev.version()) {
		return false
	}

	entity, known := m.latest[item.ID]
	if !known {
		return true
	}
	if !item.version().After(entity.version()) {
		return false
	}

	if byType == nil {
		byType = make(map[string]Item)
		m.patches[item.ID] = byType
	}
	byType[item.Type] = item
	return true
}

func (m *Merger) removeLocked(id string) bool {
	if !m.removed.add(id) {
		return false
	}
	if prev, ok := m.latest[id]; ok {
		m.dropFromScope(prev)
		delete(m.latest, id)
	}
	delete(m.patches, id)
	return true
}

func (m *Merger) pruneScope(scope string) {
	list := m.scopes[scope]
	for len(list) > m.scopeLimit {
		oldest := list[0]
		list = list[1:]
		delete(m.latest, oldest.ID)
		delete(m.patches, oldest.ID)
		m.floors[scope] = oldest
	}
	m.scopes[scope] = list
}

func (m *Merger) dropFromScope(item Item) {
	list := m.scopes[item.Scope]
	for i := range list {
		if list[i].ID == item.ID {
			m.scopes[item.Scope] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

func signalKey(item Item) string {
	return item.Type + "|" + item.ID + "|" + item.version().UTC().Format(time.RFC3339Nano)
}

// recentSet remembers the last limit keys added.
type recentSet struct {
	limit int
	keys  map[string]struct{}
	order []string
}

func newRecentSet(limit int) *recentSet {
	return &recentSet{
		limit: limit,
		keys:  make(map[string]struct{}),
	}
}

func (s *recentSet) has(key string) bool {
	_, ok := s.keys[key]
	return ok
}

// add reports whether key was not present.
func (s *recentSet) add(key string) bool {
	if s.has(key) {
		return false
	}
	s.keys[key] = struct{}{}
	s.order = append(s.order, key)
	if len(s.order) > s.limit {
		delete(s.keys, s.order[0])
		s.order = s.order[1:]
	}
	return true
}

func (s *recentSet) size() int {
	return len(s.order)
}
