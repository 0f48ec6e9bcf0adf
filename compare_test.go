package bigdec

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestDecimal_Cmp(t *testing.T) {
	tests := []struct {
		d, e string
		want int
	}{
		// infinities
		{"Inf", "Inf", 0},
		{"-Inf", "-Inf", 0},
		{"-Inf", "Inf", -1},
		{"Inf", "-Inf", 1},
		{"Inf", "9999999999999999999999999", 1},
		{"-Inf", "-9999999999999999999999999", -1},
		{"0", "Inf", -1},
		// zeros
		{"0", "-0", 0},
		{"0.000", "0", 0},
		{"-0", "0E+5", 0},
		{"0", "1", -1},
		{"0", "-1", 1},
		{"-0.000", "0.5", -1},
		// signs
		{"-1", "1", -1},
		{"1", "-2", 1},
		// same sign
		{"1E2", "100", 0},
		{"2", "1", 1},
		{"2.1", "2.099", 1},
		{"12.375", "12.375", 0},
		{"1.001", "1.01", -1},
		{"-2", "-1", -1},
		{"-2.1", "-2.099", -1},
		{"5e-7", "0.0000004", 1},
		{"123456789123456789", "123456789123456788", 1},
		{"1.5e3", "1500", 0},
	}
	for _, tt := range tests {
		d, e := MustParse(tt.d), MustParse(tt.e)
		got, err := d.Cmp(e)
		if err != nil {
			t.Errorf("%q.Cmp(%q) failed: %v", tt.d, tt.e, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q.Cmp(%q) = %v, want %v", tt.d, tt.e, got, tt.want)
		}
		// antisymmetry
		rev, err := e.Cmp(d)
		if err != nil || rev != -tt.want {
			t.Errorf("%q.Cmp(%q) = %v, %v, want %v", tt.e, tt.d, rev, err, -tt.want)
		}
	}
}

func TestDecimal_Cmp_nan(t *testing.T) {
	operands := []string{"0", "1", "-1", "Inf", "-Inf", "NaN"}
	for _, text := range operands {
		d := MustParse(text)
		if _, err := d.Cmp(NaN()); !errors.Is(err, ErrUndefinedComparison) {
			t.Errorf("%q.Cmp(NaN) = %v, want ErrUndefinedComparison", text, err)
		}
		if _, err := NaN().Cmp(d); !errors.Is(err, ErrUndefinedComparison) {
			t.Errorf("NaN.Cmp(%q) = %v, want ErrUndefinedComparison", text, err)
		}
	}
}

func TestDecimal_Cmp_totality(t *testing.T) {
	texts := []string{
		"-Inf", "-100", "-1.5", "-1", "-0.001", "0", "0.001", "1", "1.5", "1E2", "Inf",
	}
	for i, dt := range texts {
		for j, et := range texts {
			r := MustParse(dt).MustCmp(MustParse(et))
			var want int
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			if r != want {
				t.Errorf("%q.Cmp(%q) = %v, want %v", dt, et, r, want)
			}
		}
	}
}

func TestDecimal_relations(t *testing.T) {
	d, e := MustParse("1.5"), MustParse("2")

	check := func(name string, got bool, err error, want bool) {
		t.Helper()
		if err != nil {
			t.Errorf("%s failed: %v", name, err)
			return
		}
		if got != want {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}

	got, err := d.LessThan(e)
	check("LessThan", got, err, true)
	got, err = d.LessThanOrEqual(e)
	check("LessThanOrEqual", got, err, true)
	got, err = d.GreaterThan(e)
	check("GreaterThan", got, err, false)
	got, err = d.GreaterThanOrEqual(d)
	check("GreaterThanOrEqual", got, err, true)
	got, err = d.Equal(d)
	check("Equal", got, err, true)

	if _, err := d.LessThan(NaN()); !errors.Is(err, ErrUndefinedComparison) {
		t.Errorf("LessThan(NaN) = %v, want ErrUndefinedComparison", err)
	}
	if got, _ := NaN().Equal(NaN()); got {
		t.Error("NaN.Equal(NaN) = true, want false with error")
	}
}

func TestDecimal_MustCmp_panic(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustCmp(NaN) did not panic")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "1.5") || !strings.Contains(msg, "NaN") {
			t.Errorf("panic message %q does not name both operands", msg)
		}
	}()
	MustParse("1.5").MustCmp(NaN())
}

func TestDecimal_MustEqual_panic(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustEqual(NaN) did not panic")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "1.5") || !strings.Contains(msg, "NaN") {
			t.Errorf("panic message %q does not name both operands", msg)
		}
	}()
	NaN().MustEqual(MustParse("1.5"))
}
