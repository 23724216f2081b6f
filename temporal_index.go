package main

import (
	"sort"
	"time"
)

// TemporalRecord tracks how often a pattern was used and on which calendar days
type TemporalRecord struct {
	Count int
	Dates map[time.Time]struct{}
}

// TemporalIndex accumulates usage counts and date sets per command pattern
type TemporalIndex struct {
	records map[string]*TemporalRecord
}

// NewTemporalIndex creates an empty temporal index
func NewTemporalIndex() *TemporalIndex {
	return &TemporalIndex{
		records: make(map[string]*TemporalRecord),
	}
}

// dateOnly normalizes a timestamp to its calendar date (midnight UTC) so that
// day arithmetic is exact regardless of DST shifts
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Add records one occurrence of a pattern, optionally on a given date
func (ti *TemporalIndex) Add(pattern string, date *time.Time) {
	record, ok := ti.records[pattern]
	if !ok {
		record = &TemporalRecord{
			Dates: make(map[time.Time]struct{}),
		}
		ti.records[pattern] = record
	}

	record.Count++
	if date != nil {
		record.Dates[dateOnly(*date)] = struct{}{}
	}
}

// Count returns the usage count for a pattern, or 0 if it is not tracked
func (ti *TemporalIndex) Count(pattern string) int {
	if record, ok := ti.records[pattern]; ok {
		return record.Count
	}
	return 0
}

// Dates returns the date set for a pattern, or nil if it is not tracked
func (ti *TemporalIndex) Dates(pattern string) map[time.Time]struct{} {
	if record, ok := ti.records[pattern]; ok {
		return record.Dates
	}
	return nil
}

// Size returns the number of distinct patterns currently tracked
func (ti *TemporalIndex) Size() int {
	return len(ti.records)
}

// Patterns returns all tracked patterns in sorted order for deterministic iteration
func (ti *TemporalIndex) Patterns() []string {
	patterns := make([]string, 0, len(ti.records))
	for pattern := range ti.records {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns)
	return patterns
}

// NonAdjacentDays returns the non-adjacent day count for a pattern
func (ti *TemporalIndex) NonAdjacentDays(pattern string) int {
	if record, ok := ti.records[pattern]; ok {
		return countNonAdjacentDays(record.Dates)
	}
	return 0
}

// DateSpan returns the number of days between the oldest and newest use of a pattern
func (ti *TemporalIndex) DateSpan(pattern string) int {
	record, ok := ti.records[pattern]
	if !ok || len(record.Dates) == 0 {
		return 0
	}

	var oldest, newest time.Time
	for date := range record.Dates {
		if oldest.IsZero() || date.Before(oldest) {
			oldest = date
		}
		if newest.IsZero() || date.After(newest) {
			newest = date
		}
	}

	return int(newest.Sub(oldest).Hours() / 24)
}

// countNonAdjacentDays counts the separate multi-day episodes in a date set.
// A run of consecutive days counts once: three consecutive days yield 1, but
// three days spread over three weeks yield 3.
func countNonAdjacentDays(dates map[time.Time]struct{}) int {
	if len(dates) == 0 {
		return 0
	}

	sorted := make([]time.Time, 0, len(dates))
	for date := range dates {
		sorted = append(sorted, date)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Before(sorted[j])
	})

	// The earliest date always starts an episode
	count := 1
	for i := 1; i < len(sorted); i++ {
		gap := sorted[i].Sub(sorted[i-1]).Hours() / 24
		if gap > 1 {
			count++
		}
	}

	return count
}

// Filter removes every pattern whose non-adjacent day count is below the
// threshold and returns how many patterns were removed. The removal is
// destructive: filtered patterns lose their counts for all downstream planners.
func (ti *TemporalIndex) Filter(minNonAdjacentDays int) int {
	removed := 0
	for pattern, record := range ti.records {
		if countNonAdjacentDays(record.Dates) < minNonAdjacentDays {
			delete(ti.records, pattern)
			removed++
		}
	}
	return removed
}

// AllDates returns the union of every tracked pattern's date set
func (ti *TemporalIndex) AllDates() map[time.Time]struct{} {
	all := make(map[time.Time]struct{})
	for _, record := range ti.records {
		for date := range record.Dates {
			all[date] = struct{}{}
		}
	}
	return all
}
