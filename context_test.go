package bigdec

import "testing"

func TestBaseContext(t *testing.T) {
	c := BaseContext
	if c.Precision != 28 || c.Rounding != RoundHalfEven || !c.Capitals {
		t.Errorf("BaseContext = %+v", c)
	}
	if c.EMin != -999999 || c.EMax != 999999 {
		t.Errorf("BaseContext exponent bounds = %d, %d", c.EMin, c.EMax)
	}
}

func TestContext_With(t *testing.T) {
	c := BaseContext.WithPrecision(9).WithRounding(RoundDown).WithCapitals(false)
	if c.Precision != 9 || c.Rounding != RoundDown || c.Capitals {
		t.Errorf("derived context = %+v", c)
	}
	// the base is unchanged
	if BaseContext.Precision != 28 || BaseContext.Rounding != RoundHalfEven || !BaseContext.Capitals {
		t.Errorf("BaseContext mutated: %+v", BaseContext)
	}
}

func TestContext_Quantize(t *testing.T) {
	c := BaseContext
	tests := []struct {
		text string
		exp  int
		want string
	}{
		{"2.5", 0, "2"},
		{"3.5", 0, "4"},
		{"12.345", -2, "12.34"},
		{"5", -2, "5.00"},
	}
	for _, tt := range tests {
		got := c.Quantize(MustParse(tt.text), tt.exp)
		if got.String() != tt.want {
			t.Errorf("Quantize(%q, %d) = %q, want %q", tt.text, tt.exp, got, tt.want)
		}
	}

	down := c.WithRounding(RoundDown)
	if got := down.Quantize(MustParse("3.5"), 0); got.String() != "3" {
		t.Errorf("down Quantize(3.5, 0) = %q, want 3", got)
	}
}

func TestContext_Text(t *testing.T) {
	d := MustParse("1.5e3")
	c := BaseContext
	if got := c.Text(d); got != "1.5E+3" {
		t.Errorf("Text = %q", got)
	}
	if got := c.WithCapitals(false).Text(d); got != "1.5e+3" {
		t.Errorf("lowercase Text = %q", got)
	}
	if got := c.EngText(MustParse("123e5")); got != "12.3E+6" {
		t.Errorf("EngText = %q", got)
	}
}
