package main

import "testing"

func TestParseSeconds(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"45", 45, false},
		{"45s", 45, false},
		{"30m", 1800, false},
		{"1h30m", 5400, false},
		{"0", 0, true},
		{"-5", 0, true},
		{"soon", 0, true},
	}
	for _, tt := range tests {
		got, err := parseSeconds(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseSeconds(%q): expected an error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseSeconds(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseSeconds(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseProgramArg(t *testing.T) {
	spec, err := parseProgramArg("Pear Soup: boil=10m, steep=5m, rest=30")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if spec.Name != "Pear Soup" {
		t.Fatalf("name = %q", spec.Name)
	}
	if len(spec.Phases) != 3 {
		t.Fatalf("expected 3 phases, got %d", len(spec.Phases))
	}
	if spec.Phases[0].Name != "boil" || spec.Phases[0].DurationSeconds != 600 {
		t.Fatalf("phase 1 = %+v", spec.Phases[0])
	}
	if spec.Phases[2].DurationSeconds != 30 {
		t.Fatalf("bare digits should read as seconds, got %d", spec.Phases[2].DurationSeconds)
	}

	for _, bad := range []string{
		"no colon here",
		": boil=10m",
		"Empty:",
		"Bad: boil=never",
	} {
		if _, err := parseProgramArg(bad); err == nil {
			t.Errorf("parseProgramArg(%q): expected an error", bad)
		}
	}
}

func TestTrimFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2, "2"},
		{2.5, "2.5"},
		{0.25, "0.25"},
		{18, "18"},
	}
	for _, tt := range tests {
		if got := trimFloat(tt.in); got != tt.want {
			t.Errorf("trimFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
