package date

import "fmt"

// Range represents a range of dates, boundaries included.
//
// A zero boundary leaves the range open on that side.
type Range struct{ From, To Date }

// ParseRange parses the boundaries of a range, empty strings for open boundaries.
func ParseRange(from, to string) (r Range, err error) {
	if from != "" {
		if r.From, err = Parse(from); err != nil {
			return Range{}, err
		}
	}
	if to != "" {
		if r.To, err = Parse(to); err != nil {
			return Range{}, err
		}
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.To.Before(r.From) {
		return Range{}, fmt.Errorf("invalid range: %s is before %s", r.To, r.From)
	}
	return r, nil
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool {
	return (r.From.IsZero() || !date.Before(r.From)) && (r.To.IsZero() || !date.After(r.To))
}

// IsOpen reports whether both boundaries are open, and the range contains every date.
func (r Range) IsOpen() bool { return r.From.IsZero() && r.To.IsZero() }

func (r Range) String() string {
	switch {
	case r.IsOpen():
		return "all dates"
	case r.From.IsZero():
		return fmt.Sprintf("until %s", r.To)
	case r.To.IsZero():
		return fmt.Sprintf("from %s", r.From)
	}
	return fmt.Sprintf("%s to %s", r.From, r.To)
}
