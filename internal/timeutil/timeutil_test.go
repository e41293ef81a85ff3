package timeutil

import "testing"

func TestMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"07:05", 425, true},
		{"12:30", 750, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"9:00", 540, true}, // unpadded parses, IsHHMM rejects it
		{"", 0, false},
		{"12", 0, false},
		{"ab:cd", 0, false},
	}

	for _, c := range cases {
		got, err := Minutes(c.in)
		if c.ok && err != nil {
			t.Errorf("Minutes(%q) unexpected error: %v", c.in, err)
			continue
		}
		if !c.ok {
			if err == nil {
				t.Errorf("Minutes(%q) expected error, got %d", c.in, got)
			}
			continue
		}
		if got != c.want {
			t.Errorf("Minutes(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestHHMMRoundTrip(t *testing.T) {
	// Every valid zero-padded HH:MM must survive a parse/format round trip.
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m += 7 {
			s := HHMM(h*60 + m)
			mins, err := Minutes(s)
			if err != nil {
				t.Fatalf("Minutes(%q) failed: %v", s, err)
			}
			if HHMM(mins) != s {
				t.Fatalf("round trip broke: %q -> %d -> %q", s, mins, HHMM(mins))
			}
		}
	}
}

func TestIsHHMM(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	invalid := []string{"9:30", "24:00", "12:60", "1200", "12:3", ""}

	for _, s := range valid {
		if !IsHHMM(s) {
			t.Errorf("IsHHMM(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsHHMM(s) {
			t.Errorf("IsHHMM(%q) = true, want false", s)
		}
	}
}

func TestCompare(t *testing.T) {
	if Compare("09:00", "10:00") >= 0 {
		t.Error("expected 09:00 < 10:00")
	}
	// The lexicographic trap the minute comparison exists to avoid.
	if Compare("9:00", "10:00") >= 0 {
		t.Error("expected 9:00 < 10:00 under minute comparison")
	}
	if Compare("12:00", "12:00") != 0 {
		t.Error("expected 12:00 == 12:00")
	}
	if Compare("22:15", "08:00") <= 0 {
		t.Error("expected 22:15 > 08:00")
	}
}
