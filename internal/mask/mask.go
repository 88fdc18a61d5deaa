// Package mask reformats raw keystrokes into the display formats used by the
// Aluguei forms. Every mask strips non-digits first and reinserts literal
// separators by position, so applying a mask twice is the same as applying it
// once.
package mask

import (
	"strconv"
	"strings"
)

// Kind selects the display format for a form field.
type Kind int

const (
	None Kind = iota
	Phone
	CPF
	Date
	CEP
	Currency
)

// Apply formats raw input for display. Empty input yields empty output for
// every kind. Currency is free-form and passes through untouched; it is only
// parsed at submission by ParseAmount.
func Apply(raw string, kind Kind) string {
	if kind == None || kind == Currency {
		return raw
	}
	d := Digits(raw)
	if d == "" {
		return ""
	}
	switch kind {
	case Phone:
		return phone(d)
	case CPF:
		return cpf(d)
	case Date:
		return date(d)
	case CEP:
		return cep(d)
	}
	return raw
}

// Digits strips every non-digit character.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// phone renders (DD) DDDDD-DDDD, max 15 output chars (11 digits).
func phone(d string) string {
	if len(d) > 11 {
		d = d[:11]
	}
	if len(d) <= 2 {
		return d
	}
	out := "(" + d[:2] + ") "
	rest := d[2:]
	if len(rest) <= 5 {
		return out + rest
	}
	return out + rest[:5] + "-" + rest[5:]
}

// cpf renders DDD.DDD.DDD-DD, max 14 output chars (11 digits).
func cpf(d string) string {
	if len(d) > 11 {
		d = d[:11]
	}
	var b strings.Builder
	b.WriteString(d[:min(3, len(d))])
	if len(d) > 3 {
		b.WriteString(".")
		b.WriteString(d[3:min(6, len(d))])
	}
	if len(d) > 6 {
		b.WriteString(".")
		b.WriteString(d[6:min(9, len(d))])
	}
	if len(d) > 9 {
		b.WriteString("-")
		b.WriteString(d[9:])
	}
	return b.String()
}

// date renders DD/MM/AAAA, max 10 output chars (8 digits).
// No calendar validation happens here: garbage dates pass through.
func date(d string) string {
	if len(d) > 8 {
		d = d[:8]
	}
	var b strings.Builder
	b.WriteString(d[:min(2, len(d))])
	if len(d) > 2 {
		b.WriteString("/")
		b.WriteString(d[2:min(4, len(d))])
	}
	if len(d) > 4 {
		b.WriteString("/")
		b.WriteString(d[4:])
	}
	return b.String()
}

// cep renders NNNNN-NNN, max 9 output chars (8 digits).
func cep(d string) string {
	if len(d) > 8 {
		d = d[:8]
	}
	if len(d) <= 5 {
		return d
	}
	return d[:5] + "-" + d[5:]
}

// ParseAmount converts a free-form currency string ("R$ 1.500,00") to its
// numeric value. Everything except digits and the decimal comma is stripped,
// the first comma becomes the decimal point. A string with no parseable
// number is an error, never a silent zero.
func ParseAmount(s string) (float64, error) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == ',' {
			b.WriteRune(r)
		}
	}
	cleaned := strings.Replace(b.String(), ",", ".", 1)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// DateToISO converts a masked DD/MM/AAAA date to AAAA-MM-DD for the backend.
// Empty or incomplete input returns "" (the field is optional).
func DateToISO(s string) string {
	parts := strings.Split(s, "/")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || len(parts[2]) != 4 {
		return ""
	}
	day := parts[0]
	month := parts[1]
	if len(day) == 1 {
		day = "0" + day
	}
	if len(month) == 1 {
		month = "0" + month
	}
	return parts[2] + "-" + month + "-" + day
}
