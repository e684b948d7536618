package model

import (
	"errors"
	"math/big"
	"testing"
)

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad big int %q", s)
	}
	return n
}

func TestFormatUnits(t *testing.T) {
	cases := []struct {
		raw      string
		decimals uint8
		want     string
	}{
		{"1500000000000000000", 18, "1.5"},
		{"0", 18, "0.0"},
		{"3000000000000000000", 18, "3.0"},
		{"1", 18, "0.000000000000000001"},
		{"2500000", 6, "2.5"},
		{"1000000", 6, "1.0"},
		{"12345678", 6, "12.345678"},
		{"5", 0, "5.0"},
		{"0", 0, "0.0"},
		{"115792089237316195423570985008687907853269984665640564039457584007913129639935", 18, "115792089237316195423570985008687907853269984665640564039457.584007913129639935"},
	}
	for _, c := range cases {
		got := FormatUnits(mustBig(t, c.raw), c.decimals)
		if got != c.want {
			t.Fatalf("FormatUnits(%s, %d)=%q, want %q", c.raw, c.decimals, got, c.want)
		}
	}

	if got := FormatUnits(nil, 6); got != "0.0" {
		t.Fatalf("FormatUnits(nil)=%q", got)
	}
}

func TestFormatParse_RoundTrip(t *testing.T) {
	raws := []string{
		"0", "1", "9", "10", "100", "999999", "1000000", "1000001",
		"1500000000000000000", "123456789012345678901234567890",
		"18446744073709551616", // 2^64
		"115792089237316195423570985008687907853269984665640564039457584007913129639935",
	}
	for _, s := range raws {
		raw := mustBig(t, s)
		for _, d := range []uint8{0, 1, 6, 8, 18, 30, 77, 255} {
			text := FormatUnits(raw, d)
			back, err := ParseUnits(text, d)
			if err != nil {
				t.Fatalf("ParseUnits(%q, %d): %v", text, d, err)
			}
			if back.Cmp(raw) != 0 {
				t.Fatalf("round trip %s with %d decimals: %q -> %s", s, d, text, back)
			}
		}
	}
}

func TestParseUnits_Errors(t *testing.T) {
	if _, err := ParseUnits("1.0000001", 6); !errors.Is(err, ErrorAmountFormat) {
		t.Fatalf("too many fractional digits: err=%v", err)
	}
	if _, err := ParseUnits("abc", 6); !errors.Is(err, ErrorAmountFormat) {
		t.Fatalf("garbage: err=%v", err)
	}
	got, err := ParseUnits("1.500000", 6)
	if err != nil || got.Cmp(big.NewInt(1500000)) != 0 {
		t.Fatalf("ParseUnits(1.500000)=%v, %v", got, err)
	}
}
