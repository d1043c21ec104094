// Package rarity keeps the rarity manager's records in weighted order.
//
// A Collection is sorted by descending weight; records with equal weight keep
// the order they were inserted in. Names are unique after trimming and case
// folding. Move reorders by hand and bypasses the weight sort until the next
// weight change.
package rarity

import (
	"sort"
	"strings"
	"sync"

	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
)

type entry struct {
	item talents.RarityItem
	seq  uint64
}

// Collection is a concurrency-safe, weight-ordered set of rarity records
type Collection struct {
	mu      sync.RWMutex
	entries []entry
	nextSeq uint64
}

// NewCollection creates a collection holding items, sorted by weight
func NewCollection(items ...talents.RarityItem) (*Collection, error) {
	c := &Collection{}
	if err := c.Replace(items); err != nil {
		return nil, err
	}
	return c, nil
}

// normalizeName folds a name for uniqueness checks
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Items returns a copy of the records in display order
func (c *Collection) Items() []talents.RarityItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]talents.RarityItem, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.item
	}
	return out
}

// Len returns the number of records
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Get returns the record with id
func (c *Collection) Get(id string) (talents.RarityItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return talents.RarityItem{}, errors.NotFoundf("rarity %s not found", id)
	}
	return c.entries[idx].item, nil
}

// CheckName reports an AlreadyExists error when name collides with a record
// other than excludeID
func (c *Collection) CheckName(name, excludeID string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.checkName(name, excludeID)
}

// Insert adds item and re-sorts
func (c *Collection) Insert(item talents.RarityItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if item.ID == "" {
		return errors.InvalidArgument("rarity ID is required")
	}
	if c.indexOf(item.ID) >= 0 {
		return errors.AlreadyExistsf("rarity %s already exists", item.ID)
	}
	if err := c.checkName(item.Name, ""); err != nil {
		return err
	}

	c.entries = append(c.entries, entry{item: item, seq: c.nextSeq})
	c.nextSeq++
	c.sort()
	return nil
}

// Update replaces the record with id. A name change is re-checked for
// uniqueness; a weight change re-sorts the collection. The record may change
// identity, which is how an optimistic record is swapped for the canonical one.
func (c *Collection) Update(id string, item talents.RarityItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return errors.NotFoundf("rarity %s not found", id)
	}
	if item.ID == "" {
		item.ID = id
	}
	if item.ID != id && c.indexOf(item.ID) >= 0 {
		return errors.AlreadyExistsf("rarity %s already exists", item.ID)
	}

	current := c.entries[idx].item
	if normalizeName(current.Name) != normalizeName(item.Name) {
		if err := c.checkName(item.Name, id); err != nil {
			return err
		}
	}

	c.entries[idx].item = item
	if current.Weight != item.Weight {
		c.sort()
	}
	return nil
}

// Remove deletes the record with id
func (c *Collection) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return errors.NotFoundf("rarity %s not found", id)
	}
	c.entries = append(c.entries[:idx], c.entries[idx+1:]...)
	return nil
}

// Move takes the record at from and places it at to, shifting the records
// in between. For adjacent indexes this is a swap.
func (c *Collection) Move(from, to int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.entries)
	if from < 0 || from >= n || to < 0 || to >= n {
		return errors.OutOfRangef("move %d to %d is outside 0..%d", from, to, n-1)
	}
	if from == to {
		return errors.InvalidArgumentf("move source and destination are both %d", from)
	}

	moved := c.entries[from]
	c.entries = append(c.entries[:from], c.entries[from+1:]...)
	c.entries = append(c.entries[:to], append([]entry{moved}, c.entries[to:]...)...)

	// manual order becomes the tie-break order
	for i := range c.entries {
		c.entries[i].seq = uint64(i)
	}
	c.nextSeq = uint64(len(c.entries))
	return nil
}

// Replace swaps the whole collection for items. Duplicate IDs or names are
// rejected and leave the collection unchanged.
func (c *Collection) Replace(items []talents.RarityItem) error {
	ids := make(map[string]bool, len(items))
	names := make(map[string]bool, len(items))
	entries := make([]entry, 0, len(items))
	for i, item := range items {
		if item.ID == "" {
			return errors.InvalidArgumentf("rarity %d has no ID", i)
		}
		if ids[item.ID] {
			return errors.AlreadyExistsf("rarity %s already exists", item.ID)
		}
		name := normalizeName(item.Name)
		if names[name] {
			return errors.AlreadyExistsf("rarity name %q already exists", strings.TrimSpace(item.Name))
		}
		ids[item.ID] = true
		names[name] = true
		entries = append(entries, entry{item: item, seq: uint64(i)})
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = entries
	c.nextSeq = uint64(len(entries))
	c.sort()
	return nil
}

func (c *Collection) indexOf(id string) int {
	for i, e := range c.entries {
		if e.item.ID == id {
			return i
		}
	}
	return -1
}

func (c *Collection) checkName(name, excludeID string) error {
	want := normalizeName(name)
	for _, e := range c.entries {
		if e.item.ID != excludeID && normalizeName(e.item.Name) == want {
			return errors.AlreadyExistsf("rarity name %q already exists", strings.TrimSpace(name))
		}
	}
	return nil
}

func (c *Collection) sort() {
	sort.SliceStable(c.entries, func(i, j int) bool {
		if c.entries[i].item.Weight != c.entries[j].item.Weight {
			return c.entries[i].item.Weight > c.entries[j].item.Weight
		}
		return c.entries[i].seq < c.entries[j].seq
	})
}
