// Package i18n holds the localization table used to resolve text keys of
// tree documents into displayed strings.
package i18n

import (
	"sync"

	"github.com/aretw0/parley/pkg/domain"
)

// Table maps text keys to localized strings.
// Safe for concurrent use (reloads may run on a watcher goroutine).
type Table struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		entries: make(map[string]string),
	}
}

// Load inserts every (tag, body) pair of a decoded pairs document.
// Later loads overwrite earlier entries for the same key.
func (t *Table) Load(doc *domain.Document) {
	if doc == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, el := range doc.Elements {
		t.entries[el.Tag] = el.Body
	}
}

// Lookup returns the stored text for key and whether it exists.
func (t *Table) Lookup(key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.entries[key]
	return v, ok
}

// Resolve returns the stored text for key, or key itself when absent.
func (t *Table) Resolve(key string) string {
	if v, ok := t.Lookup(key); ok {
		return v
	}
	return key
}

// Len returns the number of entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
