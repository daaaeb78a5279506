package model

import (
	"fmt"
	"strings"
	"time"
)

type ScopeType string

const (
	ScopeAll     ScopeType = "all"
	ScopeCurrent ScopeType = "current"
	ScopeSaving  ScopeType = "saving"
)

// Scope restricts a report to one account or to everything. An empty Name on
// a current or saving scope means every account of that kind.
type Scope struct {
	Type ScopeType
	Name string
}

func AllScope() Scope {
	return Scope{Type: ScopeAll}
}

func CurrentScope(name string) Scope {
	return Scope{Type: ScopeCurrent, Name: name}
}

func SavingScope(name string) Scope {
	return Scope{Type: ScopeSaving, Name: name}
}

// ParseScope reads the wire form of a scope; an empty type is ScopeAll.
func ParseScope(scopeType, name string) (Scope, error) {
	switch ScopeType(strings.ToLower(strings.TrimSpace(scopeType))) {
	case "", ScopeAll:
		return AllScope(), nil
	case ScopeCurrent:
		return CurrentScope(name), nil
	case ScopeSaving:
		return SavingScope(name), nil
	}
	return Scope{}, fmt.Errorf("scope type %q: %w", scopeType, ErrInvalidScope)
}

func (s Scope) String() string {
	if s.Type == "" || s.Type == ScopeAll {
		return string(ScopeAll)
	}
	return string(s.Type) + ":" + s.Name
}

// Period selects a calendar year, or one month of it when Month is set.
type Period struct {
	Year  int
	Month time.Month
}

func YearPeriod(year int) Period {
	return Period{Year: year}
}

func MonthPeriod(year int, month time.Month) Period {
	return Period{Year: year, Month: month}
}

// HasMonth reports whether the period is narrowed to a single month.
func (p Period) HasMonth() bool {
	return p.Month >= time.January && p.Month <= time.December
}

// Contains reports whether a parsed date falls inside the period.
func (p Period) Contains(when time.Time) bool {
	if when.Year() != p.Year {
		return false
	}
	return !p.HasMonth() || when.Month() == p.Month
}

// DaysIn is the number of days of the period's month.
func (p Period) DaysIn() int {
	if !p.HasMonth() {
		return 0
	}
	return time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (p Period) String() string {
	if !p.HasMonth() {
		return fmt.Sprintf("%04d", p.Year)
	}
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}
