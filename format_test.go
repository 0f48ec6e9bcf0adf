package bigdec

import "testing"

func TestDecimal_String(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"0", "0"},
		{"-0", "-0"},
		{"0.0", "0.0"},
		{"0.00", "0.00"},
		{"123.456", "123.456"},
		{"-12.375", "-12.375"},
		{".5", "0.5"},
		{"0.000005", "0.000005"},
		{"5e-7", "5E-7"},
		{"-5e-7", "-5E-7"},
		{"1.5e3", "1.5E+3"},
		{"1E2", "1E+2"},
		{"123e5", "1.23E+7"},
		{"100", "100"},
		{"0e2", "0E+2"},
		{"Infinity", "Infinity"},
		{"-inf", "-Infinity"},
		{"nan", "NaN"},
	}
	for _, tt := range tests {
		got := MustParse(tt.text).String()
		if got != tt.want {
			t.Errorf("MustParse(%q).String() = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestDecimal_EngString(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"123.456", "123.456"},
		{"1.5e3", "1.5E+3"},
		{"123e5", "12.3E+6"},
		{"1e4", "10E+3"},
		{"1.2e-7", "120E-9"},
		{"5e-7", "500E-9"},
		{"0e2", "0.0E+3"},
		{"0e1", "0.00E+3"},
		{"-inf", "-Infinity"},
		{"nan", "NaN"},
	}
	for _, tt := range tests {
		got := MustParse(tt.text).EngString()
		if got != tt.want {
			t.Errorf("MustParse(%q).EngString() = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestDecimal_Text(t *testing.T) {
	tests := []struct {
		text        string
		capitals    bool
		engineering bool
		want        string
	}{
		{"1.5e3", true, false, "1.5E+3"},
		{"1.5e3", false, false, "1.5e+3"},
		{"5e-7", false, false, "5e-7"},
		{"1.2e-7", false, true, "120e-9"},
		{"123.456", false, false, "123.456"},
	}
	for _, tt := range tests {
		got := MustParse(tt.text).Text(tt.capitals, tt.engineering)
		if got != tt.want {
			t.Errorf("MustParse(%q).Text(%v, %v) = %q, want %q",
				tt.text, tt.capitals, tt.engineering, got, tt.want)
		}
	}
}

func TestDecimal_StringRoundTrip(t *testing.T) {
	texts := []string{
		"0", "-0", "0.000", "1", "-1", "123.456", "-12.375",
		"5e-7", "1.5e3", "123e5", "0.000005", "9999999999999999999999",
		"1e-100", "1e100", "Infinity", "-Infinity",
	}
	for _, text := range texts {
		d := MustParse(text)
		for _, s := range []string{d.String(), d.EngString(), d.Text(false, false), d.Text(false, true)} {
			e, err := Parse(s)
			if err != nil {
				t.Errorf("Parse(%q) failed: %v", s, err)
				continue
			}
			if d.MustCmp(e) != 0 {
				t.Errorf("MustParse(%q) does not round-trip through %q", text, s)
			}
		}
	}
}
