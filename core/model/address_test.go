package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestChecksumHex_EIP55Vectors(t *testing.T) {
	vectors := []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	}
	for _, v := range vectors {
		got := ChecksumHex(strings.ToLower(v[2:]))
		if got != v {
			t.Fatalf("ChecksumHex(%s)=%s", v, got)
		}
		if got != common.HexToAddress(v).Hex() {
			t.Fatalf("ChecksumHex(%s)=%s, go-ethereum says %s", v, got, common.HexToAddress(v).Hex())
		}
	}
}

func TestNormalizeAddress(t *testing.T) {
	want := "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

	ok := []string{
		want,
		strings.ToLower(want),
		"0x" + strings.ToUpper(want[2:]),
		strings.ToLower(want[2:]),
		"0X" + strings.ToLower(want[2:]),
		"  " + want + "\n",
	}
	for _, in := range ok {
		addr, err := NormalizeAddress(in)
		if err != nil {
			t.Fatalf("NormalizeAddress(%q): %v", in, err)
		}
		if addr.Hex() != want {
			t.Fatalf("NormalizeAddress(%q)=%s", in, addr.Hex())
		}
	}

	bad := []string{
		"",
		"0x",
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeA",     // short
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed00", // long
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAeg",   // non hex
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAeD",   // bad checksum
		"vitalik.eth",
	}
	for _, in := range bad {
		_, err := NormalizeAddress(in)
		if !errors.Is(err, ErrorInvalidAddressFormat) {
			t.Fatalf("NormalizeAddress(%q) err=%v, want ErrorInvalidAddressFormat", in, err)
		}
	}
}

func TestNormalizeAddresses_DropsDuplicates(t *testing.T) {
	a := "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	b := "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"

	addrs, dup, err := NormalizeAddresses([]string{a, b, strings.ToLower(a)})
	if err != nil {
		t.Fatalf("NormalizeAddresses: %v", err)
	}
	if len(addrs) != 2 || addrs[0].Hex() != a || addrs[1].Hex() != b {
		t.Fatalf("addrs=%v", addrs)
	}
	if len(dup) != 1 || dup[0] != strings.ToLower(a) {
		t.Fatalf("dup=%v", dup)
	}

	if _, _, err := NormalizeAddresses([]string{a, "0x1234"}); !errors.Is(err, ErrorInvalidAddressFormat) {
		t.Fatalf("err=%v", err)
	}
}
