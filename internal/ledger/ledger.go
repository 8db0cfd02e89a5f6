// Package ledger is the durable store of subscription records, a single
// JSON file rewritten in full on every mutation. Write volume is one
// record per purchase, so read-modify-write is fine.
package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const dateLayout = "2006-01-02"

// Record is the on-disk shape of one subscription, keyed by username in
// the enclosing JSON object.
type Record struct {
	UserID       int64  `json:"id"`
	DurationDays int    `json:"duration_days"`
	Price        int    `json:"price"`
	EndDate      string `json:"end_date"`
}

// Info describes an active subscription.
type Info struct {
	TotalDays int
	DaysLeft  int
	EndDate   time.Time
}

type Ledger struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

func New(path string) *Ledger {
	return &Ledger{path: path, now: time.Now}
}

// Upsert writes or overwrites the record for username with an expiry of
// now plus durationDays. A repeat purchase replaces the old record, it
// does not extend it.
func (l *Ledger) Upsert(username string, userID int64, durationDays, price int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.load()
	if err != nil {
		return err
	}
	endDate := l.now().AddDate(0, 0, durationDays)
	records[username] = Record{
		UserID:       userID,
		DurationDays: durationDays,
		Price:        price,
		EndDate:      endDate.Format(dateLayout),
	}
	return l.save(records)
}

// LookupActive returns subscription info for username, or nil when no
// record exists or the record has expired. DaysLeft is a calendar-date
// difference and may be zero on the last day, never negative.
func (l *Ledger) LookupActive(username string) (*Info, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.load()
	if err != nil {
		return nil, err
	}
	rec, ok := records[username]
	if !ok {
		return nil, nil
	}
	endDate, err := time.Parse(dateLayout, rec.EndDate)
	if err != nil {
		return nil, fmt.Errorf("ledger: bad end_date for %q: %w", username, err)
	}
	today := truncateToDate(l.now())
	daysLeft := int(endDate.Sub(today).Hours() / 24)
	if daysLeft < 0 {
		return nil, nil
	}
	return &Info{
		TotalDays: rec.DurationDays,
		DaysLeft:  daysLeft,
		EndDate:   endDate,
	}, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (l *Ledger) load() (map[string]Record, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]Record{}, nil
		}
		return nil, fmt.Errorf("ledger: read %s: %w", l.path, err)
	}
	records := map[string]Record{}
	if len(data) == 0 {
		return records, nil
	}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("ledger: parse %s: %w", l.path, err)
	}
	return records, nil
}

func (l *Ledger) save(records map[string]Record) error {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return err
	}
	tmp := l.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("ledger: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, l.path); err != nil {
		return fmt.Errorf("ledger: rename %s: %w", filepath.Base(tmp), err)
	}
	return nil
}
