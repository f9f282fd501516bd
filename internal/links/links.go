// Package links holds the shortlink table: a read-only mapping from short
// key to destination URL, built once at startup.
package links

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"sort"
)

//go:embed links.json
var defaultLinks []byte

// ErrInvalidTable is returned when a link table document cannot be used.
var ErrInvalidTable = errors.New("invalid link table")

// Table maps short keys to destination URLs. It is never mutated after
// construction, so concurrent lookups need no locking.
type Table struct {
	entries map[string]string
}

// New returns a table holding a copy of entries.
func New(entries map[string]string) *Table {
	t := &Table{entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		t.entries[k] = v
	}
	return t
}

// Lookup returns the destination for key. Matching is exact and
// case-sensitive.
func (t *Table) Lookup(key string) (string, bool) {
	if t == nil {
		return "", false
	}
	dest, ok := t.entries[key]
	return dest, ok
}

// Len returns the number of links in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Keys returns the short keys in sorted order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Parse decodes a JSON object of short key to destination URL. When a key
// appears more than once the last value wins.
func Parse(data []byte) (*Table, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, fmt.Errorf("%w: document must be a JSON object", ErrInvalidTable)
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}

	for key, dest := range entries {
		if key == "" {
			return nil, fmt.Errorf("%w: empty short key", ErrInvalidTable)
		}
		if err := validateDestination(dest); err != nil {
			return nil, fmt.Errorf("%w: key %q: %w", ErrInvalidTable, key, err)
		}
	}

	return &Table{entries: entries}, nil
}

// Load reads and parses the link table at path.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read link table: %w", err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return t, nil
}

// Default returns the table compiled into the binary.
func Default() *Table {
	t, err := Parse(defaultLinks)
	if err != nil {
		panic(fmt.Sprintf("links: embedded table: %v", err))
	}
	return t
}

func validateDestination(dest string) error {
	u, err := url.Parse(dest)
	if err != nil {
		return err
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("destination %q is not an absolute URL", dest)
	}
	return nil
}
