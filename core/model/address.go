package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrorInvalidAddressFormat = errors.New("invalid address format")
	ErrorQueryFailure         = errors.New("query failure")
)

// NormalizeAddress parses a wallet or contract address into its canonical form.
// Bodies that are all lower or all upper case are accepted as is, mixed case
// bodies must carry a valid EIP-55 checksum.
func NormalizeAddress(input string) (common.Address, error) {
	s := strings.TrimSpace(input)
	body := s
	if strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X") {
		body = body[2:]
	}
	if len(body) != 2*common.AddressLength {
		return common.Address{}, fmt.Errorf("%w: %q has %d hex digits, want %d", ErrorInvalidAddressFormat, input, len(body), 2*common.AddressLength)
	}
	for _, c := range body {
		if !isHexDigit(c) {
			return common.Address{}, fmt.Errorf("%w: %q contains non hex character %q", ErrorInvalidAddressFormat, input, c)
		}
	}

	lower := strings.ToLower(body)
	if body != lower && body != strings.ToUpper(body) {
		if ChecksumHex(lower) != "0x"+body {
			return common.Address{}, fmt.Errorf("%w: %q has a bad checksum", ErrorInvalidAddressFormat, input)
		}
	}

	return common.HexToAddress(lower), nil
}

// NormalizeAddresses normalizes every input in order and drops duplicates,
// keeping the first occurrence. The first invalid input aborts.
func NormalizeAddresses(inputs []string) (addrs []common.Address, duplicates []string, err error) {
	seen := make(map[common.Address]bool, len(inputs))
	for _, in := range inputs {
		addr, err := NormalizeAddress(in)
		if err != nil {
			return nil, nil, err
		}
		if seen[addr] {
			duplicates = append(duplicates, in)
			continue
		}
		seen[addr] = true
		addrs = append(addrs, addr)
	}
	return addrs, duplicates, nil
}

func isHexDigit(c rune) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
