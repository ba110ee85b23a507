package units

import "testing"

func TestNumberWithCommas(t *testing.T) {
	tests := map[string]string{
		"0":                     "0",
		"999":                   "999",
		"1234":                  "1,234",
		"1234567.5":             "1,234,567.5",
		"1234.":                 "1,234.",
		"12.345":                "12.345",
		"0.":                    "0.",
		"2100000000000000":      "2,100,000,000,000,000",
		"123456789012345678901": "123456789012345678901",
	}
	for in, want := range tests {
		if got := NumberWithCommas(in); got != want {
			t.Errorf("NumberWithCommas(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatBitcoinWithSpaces(t *testing.T) {
	tests := map[string]string{
		"0":          "0",
		"0.":         "0.",
		"0.1":        "0.1",
		"0.12":       "0.12",
		"1.234":      "1.23 4",
		"1.23456789": "1.23 456 789",
		"0.00100000": "0.00 100 000",
		"21000000":   "21,000,000",
		"1234.5":     "1,234.5",
	}
	for in, want := range tests {
		if got := FormatBitcoinWithSpaces(in); got != want {
			t.Errorf("FormatBitcoinWithSpaces(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatterLocale(t *testing.T) {
	t.Run("german separators", func(t *testing.T) {
		f := NewFormatter("de")
		if f.DecimalSeparator() != "," {
			t.Fatalf("decimal separator = %q", f.DecimalSeparator())
		}
		if got := f.Number("1234567.5"); got != "1.234.567,5" {
			t.Errorf("Number = %q", got)
		}
		if got := f.Bitcoin("1.5"); got != "1,5" {
			t.Errorf("Bitcoin = %q", got)
		}
	})

	t.Run("bad tag falls back to english", func(t *testing.T) {
		f := NewFormatter("not a locale!")
		if f.Locale() != "en" {
			t.Errorf("locale = %q, want en", f.Locale())
		}
		if got := f.Number("1234.5"); got != "1,234.5" {
			t.Errorf("Number = %q", got)
		}
	})

	t.Run("empty tag", func(t *testing.T) {
		if got := NewFormatter("").DecimalSeparator(); got != "." {
			t.Errorf("decimal separator = %q", got)
		}
	})
}

func TestSeparatorRuns(t *testing.T) {
	runs := separatorRuns("1,234,567.5")
	if len(runs) != 3 || runs[0] != "," || runs[2] != "." {
		t.Errorf("runs = %q", runs)
	}
	if runs := separatorRuns("42"); len(runs) != 0 {
		t.Errorf("runs = %q, want none", runs)
	}
}
