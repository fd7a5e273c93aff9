package svlex

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestParseBasedNumberLiterals(t *testing.T) {
	cases := []struct {
		base, digits string
		want         BasedNumber
	}{
		{"'b", "1", BasedNumber{'b', false, "1", true}},
		{"'b", "1101", BasedNumber{'b', false, "1101", true}},
		{"'b", "_1_1_0_1_", BasedNumber{'b', false, "1101", true}},
		{"'sb", "1100_0011", BasedNumber{'b', true, "11000011", true}},
		{"'B", "0", BasedNumber{'b', false, "0", true}},
		{"'sB", "1", BasedNumber{'b', true, "1", true}},
		{"'d", "12", BasedNumber{'d', false, "12", true}},
		{"'o", "66", BasedNumber{'o', false, "66", true}},
		{"'h", "F00D", BasedNumber{'h', false, "F00D", true}},
		{"'H", "FEED_face", BasedNumber{'h', false, "FEEDface", true}},
		{"'sh", "ADee", BasedNumber{'h', true, "ADee", true}},
	}
	for _, c := range cases {
		got := ParseBasedNumber(c.base, c.digits)
		qt.Assert(t, qt.Equals(got, c.want), qt.Commentf("base=%q digits=%q", c.base, c.digits))
	}
}

func TestParseBasedNumberInvalid(t *testing.T) {
	cases := []struct{ base, digits string }{
		{"", ""},
		{"xx", ""},
		{"", "96"},
		{"1'b", "1"},
	}
	for _, c := range cases {
		got := ParseBasedNumber(c.base, c.digits)
		qt.Assert(t, qt.IsFalse(got.OK), qt.Commentf("base=%q digits=%q", c.base, c.digits))
	}
}

func TestBitsPerDigit(t *testing.T) {
	qt.Assert(t, qt.Equals(BitsPerDigit('b'), 1))
	qt.Assert(t, qt.Equals(BitsPerDigit('o'), 3))
	qt.Assert(t, qt.Equals(BitsPerDigit('h'), 4))
	qt.Assert(t, qt.Equals(BitsPerDigit('d'), 0))
}

func TestSplitBasedLiteralText(t *testing.T) {
	base, digits, err := SplitBasedLiteralText("'shFF")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(base, "'sh"))
	qt.Assert(t, qt.Equals(digits, "FF"))
}
