package invites

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usedFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "used_links.txt")
}

func TestAllocateInOrderUntilExhausted(t *testing.T) {
	p := NewPool([]string{"linkA", "linkB", "linkC"}, usedFile(t))

	for _, want := range []string{"linkA", "linkB", "linkC"} {
		link, ok, err := p.Allocate()
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want, link)
	}

	_, ok, err := p.Allocate()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAllocateSkipsPreConsumedLinks(t *testing.T) {
	path := usedFile(t)
	require.NoError(t, os.WriteFile(path, []byte("linkA\n"), 0644))

	p := NewPool([]string{"linkA", "linkB"}, path)
	link, ok, err := p.Allocate()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "linkB", link)
}

func TestConsumedLinkNeverReissuedAfterReopen(t *testing.T) {
	path := usedFile(t)

	p := NewPool([]string{"linkA"}, path)
	link, ok, err := p.Allocate()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "linkA", link)

	// A new pool over the same file must not hand out linkA again.
	reopened := NewPool([]string{"linkA"}, path)
	_, ok, err = reopened.Allocate()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemaining(t *testing.T) {
	p := NewPool([]string{"linkA", "linkB"}, usedFile(t))

	n, err := p.Remaining()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, _, err = p.Allocate()
	require.NoError(t, err)

	n, err = p.Remaining()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNewPoolDropsBlankEntries(t *testing.T) {
	p := NewPool([]string{" linkA ", "", "  "}, usedFile(t))

	link, ok, err := p.Allocate()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "linkA", link)

	_, ok, err = p.Allocate()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConcurrentAllocationsAreUnique(t *testing.T) {
	links := make([]string, 16)
	for i := range links {
		links[i] = fmt.Sprintf("invite-%02d", i)
	}
	p := NewPool(links, usedFile(t))

	var mu sync.Mutex
	var wg sync.WaitGroup
	seen := map[string]int{}

	for range links {
		wg.Add(1)
		go func() {
			defer wg.Done()
			link, ok, err := p.Allocate()
			assert.NoError(t, err)
			assert.True(t, ok)
			mu.Lock()
			seen[link]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, len(links))
	for link, n := range seen {
		assert.Equal(t, 1, n, "link %q issued more than once", link)
	}
}
