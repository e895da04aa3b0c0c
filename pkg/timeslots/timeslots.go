// Package timeslots splits a time window into fixed-length bookable intervals.
package timeslots

import (
	"errors"
	"time"
)

// ErrInvalidDuration is returned when the slot length is zero or negative.
var ErrInvalidDuration = errors.New("slot duration must be positive")

// Interval is a half-open range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration returns End - Start.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Partition cuts [start, end) into consecutive intervals of exactly duration.
// A trailing remainder shorter than duration is dropped. An empty or inverted
// window yields no intervals and no error.
func Partition(start, end time.Time, duration time.Duration) ([]Interval, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if !start.Before(end) {
		return []Interval{}, nil
	}

	var intervals []Interval
	for cursor := start; ; {
		next := cursor.Add(duration)
		if next.After(end) {
			break
		}
		intervals = append(intervals, Interval{Start: cursor, End: next})
		cursor = next
	}
	if intervals == nil {
		intervals = []Interval{}
	}
	return intervals, nil
}

// PartitionMinutes is Partition for a length in whole minutes. A length longer
// than the window yields no intervals, even when it is too large to convert to
// a time.Duration.
func PartitionMinutes(start, end time.Time, minutes int) ([]Interval, error) {
	if minutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if !start.Before(end) || int64(minutes) > int64(end.Sub(start)/time.Minute) {
		return []Interval{}, nil
	}
	return Partition(start, end, Minutes(minutes))
}

// Count returns how many whole minutes-long intervals fit in [start, end).
// It does not overflow for any minutes value.
func Count(start, end time.Time, minutes int) int64 {
	if minutes <= 0 || !start.Before(end) {
		return 0
	}
	return int64(end.Sub(start)/time.Minute) / int64(minutes)
}

// Minutes converts a slot length expressed in whole minutes. Values beyond
// about 292 years wrap; PartitionMinutes never converts those.
func Minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
