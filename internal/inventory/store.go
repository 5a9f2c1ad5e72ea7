package inventory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rdmartins/drilltrack-backend/pkg/enums"
	pkgerrors "github.com/rdmartins/drilltrack-backend/pkg/errors"
)

// Store owns the in-memory inventory aggregate for the life of the process.
// It is the single writer; readers get deep-copied snapshots.
type Store struct {
	mu    sync.RWMutex
	state State

	newID func() string
	now   func() time.Time
}

// Option customizes a Store, mainly for tests.
type Option func(*Store)

// WithIDGenerator overrides withdrawal id generation.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore seeds a store with the given items. The slice is copied; the
// caller's backing array is never mutated.
func NewStore(items []ToolItem, opts ...Option) *Store {
	s := &Store{
		state: State{
			Inventory:   make([]ToolItem, len(items)),
			Withdrawals: []Withdrawal{},
		},
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC() },
	}
	copy(s.state.Inventory, items)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ApplyWithdrawalInput is the validated command to deplete stock.
type ApplyWithdrawalInput struct {
	ToolID     string
	Quantity   int
	Reason     enums.WithdrawalReason
	Supervisor enums.Supervisor
}

// ApplyWithdrawal atomically decrements the referenced item's stock and
// prepends the withdrawal record. On any rejection the aggregate is left
// untouched: the check happens before either mutation.
func (s *Store) ApplyWithdrawal(input ApplyWithdrawalInput) (Withdrawal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.state.Inventory {
		if s.state.Inventory[i].ID == input.ToolID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Withdrawal{}, pkgerrors.New(pkgerrors.CodeNotFound, "tool not found")
	}

	item := &s.state.Inventory[idx]
	if input.Quantity > item.Stock {
		return Withdrawal{}, pkgerrors.New(pkgerrors.CodeInsufficientStock, "withdrawal exceeds current stock").
			WithDetails(map[string]any{
				"tool_id":   item.ID,
				"available": item.Stock,
				"requested": input.Quantity,
			})
	}

	record := Withdrawal{
		ID:         s.newID(),
		ToolID:     item.ID,
		ToolName:   item.Name,
		Model:      item.Model,
		Quantity:   input.Quantity,
		Date:       s.now(),
		Reason:     input.Reason,
		Supervisor: input.Supervisor,
	}

	item.Stock -= input.Quantity
	s.state.Withdrawals = append([]Withdrawal{record}, s.state.Withdrawals...)

	return record, nil
}

// Snapshot returns a deep copy of the aggregate.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Item returns a copy of the item with the given id.
func (s *Store) Item(id string) (ToolItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.state.Inventory {
		if item.ID == id {
			return item, true
		}
	}
	return ToolItem{}, false
}
