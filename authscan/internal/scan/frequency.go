package scan

import "sort"

// Entry is one row of a leaderboard.
type Entry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// FrequencyTable counts occurrences per key and remembers the order in
// which keys were first seen.
type FrequencyTable struct {
	counts map[string]int
	order  []string
}

// NewFrequencyTable returns an empty table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

// Inc adds one occurrence of key.
func (t *FrequencyTable) Inc(key string) {
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

// Count returns the occurrences of key, 0 if never seen.
func (t *FrequencyTable) Count(key string) int {
	return t.counts[key]
}

// Len returns the number of distinct keys.
func (t *FrequencyTable) Len() int {
	return len(t.order)
}

// TopN returns at most n entries by count descending. Ties keep first
// insertion order. n <= 0 yields an empty slice.
func (t *FrequencyTable) TopN(n int) []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, k := range t.order {
		entries = append(entries, Entry{Key: k, Count: t.counts[k]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n < 0 {
		n = 0
	}
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
