package validate

import "testing"

func TestHasAll(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   bool
	}{
		{"all filled", []string{"Ana", "a@b.com", "x"}, true},
		{"one empty", []string{"Ana", "", "x"}, false},
		{"whitespace only counts as empty", []string{"Ana", "   ", "x"}, false},
		{"no values", nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasAll(tc.values...); got != tc.want {
				t.Errorf("HasAll(%v) = %v, want %v", tc.values, got, tc.want)
			}
		})
	}
}

func TestIsState(t *testing.T) {
	if len(StateCodes) != 27 {
		t.Fatalf("StateCodes has %d entries, want 27", len(StateCodes))
	}
	tests := []struct {
		code string
		want bool
	}{
		{"SP", true},
		{"RJ", true},
		{"TO", true},
		{"XX", false},
		{"sp", false},
		{"", false},
		{"S", false},
	}
	for _, tc := range tests {
		if got := IsState(tc.code); got != tc.want {
			t.Errorf("IsState(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestIsStatePrefix(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},       // not-yet-complete input is fine
		{"S", true},      // prefix of SP, SC, SE
		{"R", true},      // prefix of RJ, RN, RS, RO, RR
		{"X", false},     // no code starts with X
		{"SP", true},     // complete and valid
		{"XX", false},    // complete but invalid
		{"SPA", false},   // too long
		{"Z", false},     // no code starts with Z
	}
	for _, tc := range tests {
		if got := IsStatePrefix(tc.in); got != tc.want {
			t.Errorf("IsStatePrefix(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsCPF(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"123.456.789-01", true},
		{"12345678901", true},
		{"123.456.789-0", false},
		{"", false},
		{"123456789012", false},
	}
	for _, tc := range tests {
		if got := IsCPF(tc.in); got != tc.want {
			t.Errorf("IsCPF(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsPhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"(11) 98765-4321", true}, // 11 digits
		{"(11) 3333-4444", true},  // 10 digits
		{"11987654321", true},
		{"987654321", false}, // 9 digits
		{"", false},
		{"119876543210", false}, // 12 digits
	}
	for _, tc := range tests {
		if got := IsPhone(tc.in); got != tc.want {
			t.Errorf("IsPhone(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{"empty defaults to zero", "", 0, false},
		{"whitespace defaults to zero", "  ", 0, false},
		{"plain number", "3", 3, false},
		{"malformed is error", "abc", 0, true},
		{"decimal is error", "2.5", 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseCount(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseCount(%q) = %d, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCount(%q) error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseCount(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}
