package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", New(2025, time.January, 15), false},
		{"2025-7-1", New(2025, time.July, 1), false},
		{"2025-02-30", Date{}, true},
		{"invalid-date", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAddYears(t *testing.T) {
	tests := []struct {
		on   string
		n    int
		want string
	}{
		{"2023-01-15", 0, "2023-01-15"},
		{"2023-01-15", 3, "2026-01-15"},
		{"2024-02-29", 1, "2025-03-01"},
		{"2024-02-29", 4, "2028-02-29"},
	}
	for _, tt := range tests {
		got := MustParse(tt.on).AddYears(tt.n).String()
		if got != tt.want {
			t.Errorf("%s.AddYears(%d) = %s, want %s", tt.on, tt.n, got, tt.want)
		}
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		on   string
		n    int
		want string
	}{
		{"2023-01-15", 0, "2023-01-01"},
		{"2023-01-31", 1, "2023-02-01"},
		{"2023-11-30", 3, "2024-02-01"},
		{"2023-06-15", 12, "2024-06-01"},
	}
	for _, tt := range tests {
		got := MustParse(tt.on).AddMonths(tt.n).String()
		if got != tt.want {
			t.Errorf("%s.AddMonths(%d) = %s, want %s", tt.on, tt.n, got, tt.want)
		}
	}
}

func TestDate_JSON(t *testing.T) {
	in := New(2024, time.May, 21)
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != `"2024-05-21"` {
		t.Errorf("Marshal() = %s, want %q", b, "2024-05-21")
	}
	var out Date
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if out != in {
		t.Errorf("Unmarshal() = %v, want %v", out, in)
	}

	var zero Date
	if err := json.Unmarshal([]byte(`""`), &zero); err != nil {
		t.Fatalf("Unmarshal(\"\") error = %v", err)
	}
	if !zero.IsZero() {
		t.Errorf("Unmarshal(\"\") = %v, want zero date", zero)
	}
}

func TestCompare(t *testing.T) {
	a, b := New(2024, 1, 1), New(2024, 1, 2)
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare() is not consistent for %v and %v", a, b)
	}
	if !a.Before(b) || !b.After(a) {
		t.Errorf("Before/After inconsistent for %v and %v", a, b)
	}
}
