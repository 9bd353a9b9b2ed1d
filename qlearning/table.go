package qlearning

import (
	"sync"

	"dominoes/mdp"
)

// SA is a canonical state-action pair.
type SA struct {
	State  mdp.CanonicalKey
	Action mdp.CanonicalMove
}

// Entry is one learned value with its visit count.
type Entry struct {
	SA
	Value  float64
	Visits int
}

// Table holds learned action values and visit counts. Every read-modify-write
// happens under one lock so games may share a table.
type Table struct {
	mu     sync.Mutex
	values map[SA]float64
	visits map[SA]int
}

func NewTable() *Table {
	return &Table{
		values: make(map[SA]float64),
		visits: make(map[SA]int),
	}
}

func (t *Table) Value(sa SA) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.values[sa]
}

func (t *Table) Visits(sa SA) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visits[sa]
}

func (t *Table) Set(sa SA, value float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.values[sa] = value
}

// Update counts a visit to sa and moves its value towards target with the
// learning rate alpha gives for the new visit count.
func (t *Table) Update(sa SA, target float64, alpha Schedule) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.visits[sa]++
	q := t.values[sa]
	q += alpha(t.visits[sa]) * (target - q)
	t.values[sa] = q
	return q
}

// MaxValue is the best learned value among actions in state, 0 if there are none.
func (t *Table) MaxValue(state mdp.CanonicalKey, actions []mdp.CanonicalMove) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	best := 0.0
	for i, a := range actions {
		v := t.values[SA{State: state, Action: a}]
		if i == 0 || v > best {
			best = v
		}
	}
	return best
}

func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.values)
}

// Entries returns a snapshot of every learned pair.
func (t *Table) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	entries := make([]Entry, 0, len(t.values))
	for sa, v := range t.values {
		entries = append(entries, Entry{SA: sa, Value: v, Visits: t.visits[sa]})
	}
	return entries
}

func (t *Table) load(entries []Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, e := range entries {
		t.values[e.SA] = e.Value
		if e.Visits > 0 {
			t.visits[e.SA] = e.Visits
		}
	}
}
