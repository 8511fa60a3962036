package timezone

import (
	"testing"
	"time"
)

func TestParseLocalDateTime(t *testing.T) {
	got, err := ParseLocalDateTime("Africa/Algiers", "2025-03-01", "09:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2025, 3, 1, 9, 0, 0, 0, Location("Africa/Algiers"))
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// heure murale : 09:00 à Alger, pas 09:00 UTC
	_, offset := got.Zone()
	if offset != 3600 {
		t.Errorf("expected +01:00 offset, got %d", offset)
	}
}

func TestParseLocalDateTime_Invalid(t *testing.T) {
	for _, tc := range []struct{ date, hour string }{
		{"2025-13-40", "09:00"},
		{"01/03/2025", "09:00"},
		{"2025-03-01", "9h"},
	} {
		if _, err := ParseLocalDateTime("Africa/Algiers", tc.date, tc.hour); err == nil {
			t.Errorf("expected error for %q %q", tc.date, tc.hour)
		}
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("Africa/Algiers") || !IsValid("Europe/Paris") {
		t.Error("known zones must validate")
	}
	if IsValid("Mars/Olympus") {
		t.Error("unknown zone must be rejected")
	}
}
