// Package invites allocates single-use invite links from a fixed pool,
// recording consumed links in an append-only file.
package invites

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
)

// Pool scans the configured links in order and hands out the first one
// not yet recorded as used. A link is durably marked used before it is
// returned, so a crash cannot issue it twice; a failed send after that
// wastes the link, which is the accepted trade-off.
type Pool struct {
	mu       sync.Mutex
	links    []string
	usedPath string
}

func NewPool(links []string, usedPath string) *Pool {
	clean := make([]string, 0, len(links))
	for _, link := range links {
		link = strings.TrimSpace(link)
		if link != "" {
			clean = append(clean, link)
		}
	}
	return &Pool{links: clean, usedPath: usedPath}
}

// Allocate returns the next fresh link. The second return value is false
// when the pool is exhausted; that is a normal outcome, not an error.
func (p *Pool) Allocate() (string, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	used, err := p.loadUsed()
	if err != nil {
		return "", false, err
	}
	for _, link := range p.links {
		if _, ok := used[link]; ok {
			continue
		}
		if err := p.markUsed(link); err != nil {
			return "", false, err
		}
		return link, true, nil
	}
	return "", false, nil
}

// Remaining reports how many links are still available.
func (p *Pool) Remaining() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	used, err := p.loadUsed()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, link := range p.links {
		if _, ok := used[link]; !ok {
			n++
		}
	}
	return n, nil
}

func (p *Pool) loadUsed() (map[string]struct{}, error) {
	used := map[string]struct{}{}
	f, err := os.Open(p.usedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return used, nil
		}
		return nil, fmt.Errorf("invites: open %s: %w", p.usedPath, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			used[line] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("invites: read %s: %w", p.usedPath, err)
	}
	return used, nil
}

func (p *Pool) markUsed(link string) error {
	f, err := os.OpenFile(p.usedPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("invites: open %s: %w", p.usedPath, err)
	}
	defer f.Close()

	if _, err := f.WriteString(link + "\n"); err != nil {
		return fmt.Errorf("invites: append %s: %w", p.usedPath, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("invites: sync %s: %w", p.usedPath, err)
	}
	return nil
}
