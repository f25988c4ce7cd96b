package domain

import "time"

type FilterKind int

const (
	// FilterMatchAll selects every order.
	FilterMatchAll FilterKind = iota
	// FilterAnd selects orders satisfying every clause.
	FilterAnd
	// FilterMatchNone selects nothing and must not reach storage.
	FilterMatchNone
)

type ClauseKind int

const (
	ClauseOwnerEquals ClauseKind = iota
	ClauseIssuedOnOrAfter
	ClauseIssuedOnOrBefore
)

type Clause struct {
	Kind    ClauseKind
	OwnerID int64
	At      time.Time
}

type Filter struct {
	Kind    FilterKind
	Clauses []Clause
}

// BuildOrderFilter turns optional owner and calendar-date bounds into a
// filter. Dates are anchored to the start and end of their day in UTC. A
// start date after the end date yields FilterMatchNone.
func BuildOrderFilter(ownerID *int64, startDate, endDate *time.Time) Filter {
	var start, end *time.Time
	if startDate != nil {
		t := StartOfDay(*startDate)
		start = &t
	}
	if endDate != nil {
		t := EndOfDay(*endDate)
		end = &t
	}
	if start != nil && end != nil && start.After(*end) {
		return Filter{Kind: FilterMatchNone}
	}

	var clauses []Clause
	if ownerID != nil {
		clauses = append(clauses, Clause{Kind: ClauseOwnerEquals, OwnerID: *ownerID})
	}
	if start != nil {
		clauses = append(clauses, Clause{Kind: ClauseIssuedOnOrAfter, At: *start})
	}
	if end != nil {
		clauses = append(clauses, Clause{Kind: ClauseIssuedOnOrBefore, At: *end})
	}
	if len(clauses) == 0 {
		return Filter{Kind: FilterMatchAll}
	}
	return Filter{Kind: FilterAnd, Clauses: clauses}
}

// StartOfDay returns 00:00:00 UTC on t's calendar date.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last representable instant of t's calendar date in UTC.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
}
