package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // v7
		"123e4567-e89b-12d3-a456-426614174000", // v1
		"9b2f7c1e-3f55-4c5e-9d7a-2f0f5f1c8a11", // v4
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B", // uppercase
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",         // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",     // invalid hex
		"urn:uuid:123e4567-e89b-12d3-a456-426614174000", // urn form
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", "2023-02-29", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	got, ok := IsValidMonth("2026-02")
	if !ok || got.Year() != 2026 || got.Month() != time.February {
		t.Errorf("IsValidMonth(\"2026-02\") = %v, %v", got, ok)
	}
	for _, s := range []string{"2026-13", "2026-2-01", "02-2026", "2026", ""} {
		if _, ok := IsValidMonth(s); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestParseWeekday(t *testing.T) {
	cases := []struct {
		input string
		want  time.Weekday
	}{
		{"Sunday", time.Sunday},
		{"sunday", time.Sunday},
		{" SAT ", time.Saturday},
		{"fri", time.Friday},
		{"Wednesday", time.Wednesday},
	}
	for _, c := range cases {
		got, ok := ParseWeekday(c.input)
		if !ok || got != c.want {
			t.Errorf("ParseWeekday(%q) = %v, %v; want %v", c.input, got, ok, c.want)
		}
	}
	for _, s := range []string{"", "sundays", "su", "funday"} {
		if _, ok := ParseWeekday(s); ok {
			t.Errorf("ParseWeekday(%q) = true, want false", s)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "invalid"},
		{Field: "end_date", Message: "required"},
	}
	got := errs.Error()
	want := "month: invalid; end_date: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "invalid"},
		{Field: "end_date", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"month": "invalid", "end_date": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
