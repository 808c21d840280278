package loader

import "time"

// DateFilter restricts a load to transactions within [From, To] inclusive.
// A zero bound is open-ended.
type DateFilter struct {
	From time.Time
	To   time.Time
}

// IsZero reports whether no bounds are set.
func (f DateFilter) IsZero() bool {
	return f.From.IsZero() && f.To.IsZero()
}

// Contains reports whether t falls within the filter.
func (f DateFilter) Contains(t time.Time) bool {
	if !f.From.IsZero() && t.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && t.After(f.To) {
		return false
	}
	return true
}

// String renders the bounds for logging and fingerprinting.
func (f DateFilter) String() string {
	if f.IsZero() {
		return "all"
	}
	from, to := "", ""
	if !f.From.IsZero() {
		from = f.From.Format(dateFormat)
	}
	if !f.To.IsZero() {
		to = f.To.Format(dateFormat)
	}
	return from + ".." + to
}
