// Package pending tracks the short-lived per-user state between the
// "I have paid" click and the transaction reference message.
package pending

import (
	"sync"

	"github.com/clubgate/clubgate-bot/internal/plans"
)

// Payment is what we remember about a user who confirmed a payment and
// still owes us a transaction reference.
type Payment struct {
	PlanID      plans.ID
	DisplayName string
}

// Tracker keeps at most one Payment per user. Entries live until taken
// or process restart; there is no eviction.
type Tracker struct {
	mu      sync.Mutex
	entries map[int64]Payment
}

func NewTracker() *Tracker {
	return &Tracker{entries: make(map[int64]Payment)}
}

// Begin inserts the entry for userID, overwriting any previous one.
func (t *Tracker) Begin(userID int64, planID plans.ID, displayName string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[userID] = Payment{PlanID: planID, DisplayName: displayName}
}

// TakeAndClear atomically reads and removes the entry for userID.
// The second return value is false when no entry exists, which means the
// incoming message is not a transaction reference.
func (t *Tracker) TakeAndClear(userID int64) (Payment, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.entries[userID]
	if ok {
		delete(t.entries, userID)
	}
	return p, ok
}
