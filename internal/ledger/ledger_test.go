package ledger

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T, now time.Time) *Ledger {
	t.Helper()
	l := New(filepath.Join(t.TempDir(), "subscriptions.json"))
	l.now = func() time.Time { return now }
	return l
}

func TestUpsertThenLookupSameDay(t *testing.T) {
	now := time.Date(2026, 1, 10, 15, 30, 0, 0, time.UTC)
	l := newTestLedger(t, now)

	require.NoError(t, l.Upsert("alice", 42, 14, 30))

	info, err := l.LookupActive("alice")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, 14, info.TotalDays)
	assert.Equal(t, 14, info.DaysLeft)
	assert.Equal(t, "2026-01-24", info.EndDate.Format("2006-01-02"))
}

func TestLookupUnknownUser(t *testing.T) {
	l := newTestLedger(t, time.Now())

	info, err := l.LookupActive("nobody")
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestExpiryBoundary(t *testing.T) {
	start := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	l := newTestLedger(t, start)
	require.NoError(t, l.Upsert("alice", 42, 5, 30))

	// On the expiry date itself the subscription is still active with
	// zero days left.
	l.now = func() time.Time { return start.AddDate(0, 0, 5) }
	info, err := l.LookupActive("alice")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, 0, info.DaysLeft)

	// One day past the expiry date it reads as absent.
	l.now = func() time.Time { return start.AddDate(0, 0, 6) }
	info, err = l.LookupActive("alice")
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestUpsertOverwritesInsteadOfExtending(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	l := newTestLedger(t, now)

	require.NoError(t, l.Upsert("alice", 42, 14, 30))
	require.NoError(t, l.Upsert("alice", 42, 30, 50))

	info, err := l.LookupActive("alice")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, 30, info.TotalDays)
	assert.Equal(t, 30, info.DaysLeft)
}

func TestRecordsSurviveReopen(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	path := filepath.Join(t.TempDir(), "subscriptions.json")

	l := New(path)
	l.now = func() time.Time { return now }
	require.NoError(t, l.Upsert("alice", 42, 14, 30))

	reopened := New(path)
	reopened.now = func() time.Time { return now }
	info, err := reopened.LookupActive("alice")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, 14, info.TotalDays)
	assert.Equal(t, 14, info.DaysLeft)
	assert.Equal(t, "2026-01-24", info.EndDate.Format("2006-01-02"))
}

func TestNumericFallbackKey(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	l := newTestLedger(t, now)

	// Users without a public handle are keyed by their numeric ID.
	require.NoError(t, l.Upsert("987654321", 987654321, 90, 100))

	info, err := l.LookupActive("987654321")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, 90, info.TotalDays)
}
