package model

import (
	"strings"
	"token-balance-reporter/utils/generics/must"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const (
	ERC20MethodDecimals  = "decimals"
	ERC20MethodBalanceOf = "balanceOf"
)

const ERC20ABIJson = `[{"constant":true,"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"stateMutability":"view","type":"function"},{"constant":true,"inputs":[{"name":"account","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}]`

var (
	ERC20ABI = must.Must(abi.JSON(strings.NewReader(ERC20ABIJson)))
)
