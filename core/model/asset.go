package model

import (
	"github.com/ethereum/go-ethereum/common"
)

type AssetKind uint8

const (
	AssetNative AssetKind = iota
	AssetToken
)

// Asset identifies a balance column: the chain's native currency or one token
// contract. The zero value is the native asset.
type Asset struct {
	Kind  AssetKind
	Token common.Address
}

func NativeAsset() Asset {
	return Asset{Kind: AssetNative}
}

func TokenAsset(token common.Address) Asset {
	return Asset{Kind: AssetToken, Token: token}
}

func (a Asset) IsNative() bool {
	return a.Kind == AssetNative
}

func (a Asset) String() string {
	if a.IsNative() {
		return "native"
	}
	return a.Token.Hex()
}
