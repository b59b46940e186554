// Package dateset holds the ordered list of selected dates.
package dateset

import "tableflip.dev/datepicker/pkg/caldate"

// Set is an ordered collection of calendar days. Insertion order is selection
// order. No two entries share a calendar day and, when a capacity is set, the
// oldest entries are evicted first.
type Set struct {
	dates    []caldate.Date
	capacity int
}

// New returns an empty set. A capacity of zero or less means unlimited.
func New(capacity int) *Set {
	return &Set{capacity: capacity}
}

// Capacity returns the configured limit, zero when unlimited.
func (s *Set) Capacity() int {
	if s.capacity < 0 {
		return 0
	}
	return s.capacity
}

// Push appends d unless the same day is already present, then trims from the
// front until the set fits its capacity.
func (s *Set) Push(d caldate.Date) {
	if s.Contains(d) != -1 {
		return
	}
	s.dates = append(s.dates, d)
	if s.capacity > 0 {
		for len(s.dates) > s.capacity {
			s.dates = s.dates[1:]
		}
	}
}

// Remove drops the entry at index i. Out of range indexes are ignored.
func (s *Set) Remove(i int) {
	if i < 0 || i >= len(s.dates) {
		return
	}
	s.dates = append(s.dates[:i:i], s.dates[i+1:]...)
}

// Contains returns the index of the entry on the same calendar day as d, or -1.
func (s *Set) Contains(d caldate.Date) int {
	for i, m := range s.dates {
		if m.Equal(d) {
			return i
		}
	}
	return -1
}

// Clear empties the set.
func (s *Set) Clear() {
	s.dates = nil
}

// Last returns the most recently selected date.
func (s *Set) Last() (caldate.Date, bool) {
	if len(s.dates) == 0 {
		return caldate.Date{}, false
	}
	return s.dates[len(s.dates)-1], true
}

// Len returns the number of entries.
func (s *Set) Len() int { return len(s.dates) }

// At returns the entry at index i.
func (s *Set) At(i int) caldate.Date { return s.dates[i] }

// Dates returns a copy of the entries in selection order.
func (s *Set) Dates() []caldate.Date {
	if len(s.dates) == 0 {
		return nil
	}
	out := make([]caldate.Date, len(s.dates))
	copy(out, s.dates)
	return out
}

// Copy returns an independent set with the same entries and capacity.
func (s *Set) Copy() *Set {
	return &Set{dates: s.Dates(), capacity: s.capacity}
}

// Equal reports whether both sets hold the same days in the same order.
func (s *Set) Equal(o *Set) bool {
	if s.Len() != o.Len() {
		return false
	}
	for i := range s.dates {
		if !s.dates[i].Equal(o.dates[i]) {
			return false
		}
	}
	return true
}

// Formatted maps each entry through format, keeping selection order.
func (s *Set) Formatted(format func(caldate.Date) string) []string {
	out := make([]string, 0, len(s.dates))
	for _, d := range s.dates {
		out = append(out, format(d))
	}
	return out
}
