package bot

import (
	"testing"
)

func TestParseMonths(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"3", 3},
		{"in 6 months", 6},
		{"12, I think", 12},
		{"as soon as possible", 3},
		{"100", 3},
		{"", 3},
	}
	for _, tt := range tests {
		if got := parseMonths(tt.in); got != tt.want {
			t.Errorf("parseMonths(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseScheduleDays(t *testing.T) {
	got := parseScheduleDays("Mon, Wed, Fri")
	want := []string{"monday", "wednesday", "friday"}
	if len(got) != len(want) {
		t.Fatalf("days = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("days = %v, want %v", got, want)
		}
	}

	if got := parseScheduleDays("Every day"); len(got) != 7 {
		t.Errorf("every day = %v, want all seven", got)
	}
	if got := parseScheduleDays("no idea"); len(got) != 0 {
		t.Errorf("garbage input = %v, want none", got)
	}
	if got := parseScheduleDays("monday, Monday, MON"); len(got) != 1 {
		t.Errorf("duplicates = %v, want one entry", got)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (Config{}).Validate(); err == nil {
		t.Error("empty config validated")
	}
	if err := (Config{Token: "123:abc"}).Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}
