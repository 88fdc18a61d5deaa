package mask

import (
	"fmt"
	"testing"
)

func TestApplyPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"ddd only", "11", "11"},
		{"partial", "119", "(11) 9"},
		{"mid number", "1198765", "(11) 98765"},
		{"full mobile", "11987654321", "(11) 98765-4321"},
		{"landline ten digits", "1133334444", "(11) 33334-444"},
		{"overflow truncated", "119876543210000", "(11) 98765-4321"},
		{"already masked", "(11) 98765-4321", "(11) 98765-4321"},
		{"letters stripped", "11a98765b4321", "(11) 98765-4321"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Apply(tc.in, Phone); got != tc.want {
				t.Errorf("Apply(%q, Phone) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestApplyCPF(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"three digits", "123", "123"},
		{"four digits", "1234", "123.4"},
		{"seven digits", "1234567", "123.456.7"},
		{"ten digits", "1234567890", "123.456.789-0"},
		{"full", "12345678901", "123.456.789-01"},
		{"overflow truncated", "123456789019999", "123.456.789-01"},
		{"already masked", "123.456.789-01", "123.456.789-01"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Apply(tc.in, CPF); got != tc.want {
				t.Errorf("Apply(%q, CPF) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

// Every 11-digit string must produce exactly DDD.DDD.DDD-DD with the same
// digits in order.
func TestApplyCPFPattern(t *testing.T) {
	inputs := []string{"00000000000", "12345678901", "98765432109", "11111111111"}
	for _, d := range inputs {
		got := Apply(d, CPF)
		want := fmt.Sprintf("%s.%s.%s-%s", d[:3], d[3:6], d[6:9], d[9:])
		if got != want {
			t.Errorf("Apply(%q, CPF) = %q, want %q", d, got, want)
		}
		if len(got) != 14 {
			t.Errorf("Apply(%q, CPF) length = %d, want 14", d, len(got))
		}
	}
}

func TestApplyDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"day", "15", "15"},
		{"day month partial", "153", "15/3"},
		{"day month", "1503", "15/03"},
		{"full date", "15031990", "15/03/1990"},
		{"overflow truncated", "150319901234", "15/03/1990"},
		{"garbage date passes", "99999999", "99/99/9999"},
		{"already masked", "15/03/1990", "15/03/1990"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Apply(tc.in, Date); got != tc.want {
				t.Errorf("Apply(%q, Date) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestApplyCEP(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"five digits", "01310", "01310"},
		{"six digits", "013101", "01310-1"},
		{"full", "01310100", "01310-100"},
		{"overflow truncated", "013101009", "01310-100"},
		{"already masked", "01310-100", "01310-100"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Apply(tc.in, CEP); got != tc.want {
				t.Errorf("Apply(%q, CEP) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestApplyCurrencyPassthrough(t *testing.T) {
	inputs := []string{"", "R$ 1.500,00", "1500", "abc"}
	for _, in := range inputs {
		if got := Apply(in, Currency); got != in {
			t.Errorf("Apply(%q, Currency) = %q, want unchanged", in, got)
		}
	}
}

// Applying the same mask twice must equal applying it once.
func TestApplyIdempotent(t *testing.T) {
	kinds := map[string]Kind{
		"phone":    Phone,
		"cpf":      CPF,
		"date":     Date,
		"cep":      CEP,
		"currency": Currency,
	}
	inputs := []string{"", "1", "12", "123", "12345", "12345678", "12345678901", "R$ 1.500,00"}
	for name, kind := range kinds {
		for _, in := range inputs {
			once := Apply(in, kind)
			twice := Apply(once, kind)
			if once != twice {
				t.Errorf("%s mask not idempotent on %q: once=%q twice=%q", name, in, once, twice)
			}
		}
	}
}

func TestDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"(11) 98765-4321", "11987654321"},
		{"123.456.789-01", "12345678901"},
		{"abc", ""},
		{"a1b2c3", "123"},
	}
	for _, tc := range tests {
		if got := Digits(tc.in); got != tc.want {
			t.Errorf("Digits(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{"plain integer", "1500", 1500, false},
		{"brazilian format", "R$ 1.500,00", 1500, false},
		{"comma decimals", "980,50", 980.5, false},
		{"thousands dot stripped", "2.350", 2350, false},
		{"empty is error", "", 0, true},
		{"letters only is error", "abc", 0, true},
		{"lone comma is error", ",", 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAmount(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseAmount(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDateToISO(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"15/03/1990", "1990-03-15"},
		{"5/3/1990", "1990-03-05"},
		{"15/03", ""},
		{"15/03/90", ""},
	}
	for _, tc := range tests {
		if got := DateToISO(tc.in); got != tc.want {
			t.Errorf("DateToISO(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
