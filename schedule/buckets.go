package schedule

import (
	"sort"

	"github.com/Dosada05/tournament-fixtures/models"
)

// Buckets indexes fixtures by calendar day. A fixture id appears in at most one
// bucket, and a key with no fixtures left is dropped.
// Not safe for concurrent use.
type Buckets struct {
	days map[string][]*models.Fixture
}

func NewBuckets(fixtures []*models.Fixture) *Buckets {
	b := &Buckets{days: make(map[string][]*models.Fixture)}
	for _, f := range fixtures {
		b.Add(f)
	}
	return b
}

// Add inserts f under its day. Fixtures without a date are not indexed.
func (b *Buckets) Add(f *models.Fixture) {
	key := f.DateKey()
	if key == "" {
		return
	}
	for _, existing := range b.days[key] {
		if existing.ID == f.ID {
			return
		}
	}
	b.days[key] = append(b.days[key], f)
}

// Move re-indexes f after an edit: the old entry is dropped from every bucket and f
// is inserted under its current day.
func (b *Buckets) Move(f *models.Fixture) {
	b.Remove(f.ID)
	b.Add(f)
}

// Remove drops the fixture with the given id and reports whether it was indexed.
func (b *Buckets) Remove(id string) bool {
	removed := false
	for key, fixtures := range b.days {
		kept := fixtures[:0]
		for _, f := range fixtures {
			if f.ID == id {
				removed = true
				continue
			}
			kept = append(kept, f)
		}
		b.set(key, kept)
	}
	return removed
}

// RemoveGroup drops every member of a fixture group and returns how many went.
func (b *Buckets) RemoveGroup(groupID string) int {
	if groupID == "" {
		return 0
	}
	n := 0
	for key, fixtures := range b.days {
		kept := fixtures[:0]
		for _, f := range fixtures {
			if f.FixtureGroupID == groupID {
				n++
				continue
			}
			kept = append(kept, f)
		}
		b.set(key, kept)
	}
	return n
}

func (b *Buckets) set(key string, fixtures []*models.Fixture) {
	if len(fixtures) == 0 {
		delete(b.days, key)
		return
	}
	b.days[key] = fixtures
}

// Keys returns the indexed days in ascending order.
func (b *Buckets) Keys() []string {
	keys := make([]string, 0, len(b.days))
	for k := range b.days {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (b *Buckets) Day(key string) []*models.Fixture {
	return append([]*models.Fixture(nil), b.days[key]...)
}

func (b *Buckets) Len() int {
	n := 0
	for _, fixtures := range b.days {
		n += len(fixtures)
	}
	return n
}

// Counts returns the number of fixtures per day.
func (b *Buckets) Counts() map[string]int {
	counts := make(map[string]int, len(b.days))
	for k, fixtures := range b.days {
		counts[k] = len(fixtures)
	}
	return counts
}
