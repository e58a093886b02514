package breakeven

import "testing"

func TestMoneyArithmetic(t *testing.T) {
	a := M(100.50)
	b := M(14.50)

	if got, want := a.Add(b), M(115.0); !got.Equal(want) {
		t.Errorf("Add() = %v, want %v", got, want)
	}
	if got, want := a.Sub(b), M(86.0); !got.Equal(want) {
		t.Errorf("Sub() = %v, want %v", got, want)
	}
	if got, want := M(12.5).MulInt(4), M(50.0); !got.Equal(want) {
		t.Errorf("MulInt() = %v, want %v", got, want)
	}
	if got, want := M(100.0).DivFloat(4), M(25.0); !got.Equal(want) {
		t.Errorf("DivFloat() = %v, want %v", got, want)
	}
}

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		name string
		in   Money
		want string
	}{
		{"positive", M(115.0), "$115.00"},
		{"fractional", M(0.5), "$0.50"},
		{"negative", M(-85.0), "-$85.00"},
		{"zero", Money{}, "$0.00"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMoneySignedString(t *testing.T) {
	if got, want := M(85.0).SignedString(), "+$85.00"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
	if got, want := M(-85.0).SignedString(), "-$85.00"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
	if got, want := (Money{}).SignedString(), "-"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
}

func TestPercentString(t *testing.T) {
	if got, want := Percent(73.91).String(), "73.9%"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := Percent(-12.34).SignedString(), "-12.3%"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
	if got, want := Percent(5.0).SignedString(), "+5.0%"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
}
