package payrun

import "testing"

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "1.0", want: "1.0000"},
		{in: "2", want: "2.0000"},
		{in: "0.0001", want: "0.0001"},
		{in: "1.23456", want: "1.2346"}, // rounded to 4 digits on output
		{in: "-0.5", want: "-0.5000"},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "1.2.3", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseAmount(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseAmount(%q) = %s, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) error = %v", tc.in, err)
			}
			if got.String() != tc.want {
				t.Errorf("ParseAmount(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestAmountArithmetic(t *testing.T) {
	a := A(2.5)
	b := A(1.0)

	if got := a.Add(b); !got.Equal(A(3.5)) {
		t.Errorf("2.5 + 1 = %s, want 3.5000", got)
	}
	if got := a.Sub(b); !got.Equal(A(1.5)) {
		t.Errorf("2.5 - 1 = %s, want 1.5000", got)
	}
	if got := a.Neg(); !got.Equal(A(-2.5)) {
		t.Errorf("-(2.5) = %s, want -2.5000", got)
	}
	if !a.IsPositive() || a.IsNegative() || a.IsZero() {
		t.Error("2.5 should be positive only")
	}
	if !b.LessThan(a) {
		t.Error("1 should be less than 2.5")
	}
	var zero Amount
	if !zero.IsZero() {
		t.Error("the zero value should be zero")
	}
	if zero.String() != "0.0000" {
		t.Errorf("zero amount = %s, want 0.0000", zero)
	}
}

func TestAmountDisplay(t *testing.T) {
	if got := A(1234.5).Display("USD"); got != "$1,234.50" {
		t.Errorf("Display(USD) = %q, want %q", got, "$1,234.50")
	}
}
