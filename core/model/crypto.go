package model

import (
	"fmt"

	"golang.org/x/crypto/sha3"
)

func Keccak256(data string) string {
	hasher := sha3.NewLegacyKeccak256()

	hasher.Write([]byte(data))

	hash := hasher.Sum(nil)

	return fmt.Sprintf("%x", hash)
}

// ChecksumHex applies EIP-55 casing to a lowercase 40 digit hex body (no 0x).
func ChecksumHex(lowerBody string) string {
	hash := Keccak256(lowerBody)
	out := []byte(lowerBody)
	for i, c := range out {
		if c >= 'a' && c <= 'f' && hash[i] >= '8' {
			out[i] = c - 'a' + 'A'
		}
	}
	return "0x" + string(out)
}
