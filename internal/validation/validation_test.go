package validation

import (
	"slices"
	"testing"

	"github.com/julianstephens/ritual/internal/errors"
)

func TestName_TrimsWhitespace(t *testing.T) {
	got, err := Name("  Morning run  ")
	if err != nil {
		t.Fatalf("Name failed: %v", err)
	}
	if got != "Morning run" {
		t.Errorf("Name = %q, want %q", got, "Morning run")
	}
}

func TestName_RejectsEmpty(t *testing.T) {
	for _, s := range []string{"", "   ", "\t\n"} {
		if _, err := Name(s); !errors.IsValidation(err) {
			t.Errorf("Name(%q) should be a validation error, got %v", s, err)
		}
	}
}

func TestDayRange_OrderMatters(t *testing.T) {
	s, e, err := DayRange("2026-02-01", "2026-02-07")
	if err != nil {
		t.Fatalf("DayRange failed: %v", err)
	}
	if s != "2026-02-01" || e != "2026-02-07" {
		t.Errorf("DayRange = %s..%s", s, e)
	}
	if _, _, err := DayRange("2026-02-07", "2026-02-01"); !errors.IsValidation(err) {
		t.Errorf("reversed DayRange should be a validation error, got %v", err)
	}
}

func TestWeekdays_AcceptsTagsNamesAndNumbers(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"mon,wed,fri", []string{"mon", "wed", "fri"}},
		{"Monday,WEDNESDAY", []string{"mon", "wed"}},
		{"1,3,5", []string{"mon", "wed", "fri"}},
		{"0,6", []string{"sat", "sun"}}, // 0=Sunday, Monday-first output order
		{"fri, mon", []string{"mon", "fri"}},
		{"mon,mon,monday,1", []string{"mon"}},
	}
	for _, tc := range cases {
		got, err := Weekdays(tc.in)
		if err != nil {
			t.Errorf("Weekdays(%q) failed: %v", tc.in, err)
			continue
		}
		if !slices.Equal(got, tc.want) {
			t.Errorf("Weekdays(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestWeekdays_RejectsUnknown(t *testing.T) {
	for _, s := range []string{"mon,funday", "7", "-1", ""} {
		if _, err := Weekdays(s); !errors.IsValidation(err) {
			t.Errorf("Weekdays(%q) should be a validation error, got %v", s, err)
		}
	}
}

func TestWindows_SortedAndDeduped(t *testing.T) {
	got, err := Windows("28, 7, 7, 90")
	if err != nil {
		t.Fatalf("Windows failed: %v", err)
	}
	if !slices.Equal(got, []int{7, 28, 90}) {
		t.Errorf("Windows = %v, want [7 28 90]", got)
	}
}

func TestWindows_RejectsNonPositive(t *testing.T) {
	for _, s := range []string{"0", "-7", "7,x", ""} {
		if _, err := Windows(s); !errors.IsValidation(err) {
			t.Errorf("Windows(%q) should be a validation error, got %v", s, err)
		}
	}
}

func TestGoal(t *testing.T) {
	if err := Goal(3); err != nil {
		t.Errorf("Goal(3) failed: %v", err)
	}
	if err := Goal(0); !errors.IsValidation(err) {
		t.Errorf("Goal(0) should be a validation error, got %v", err)
	}
}
