package chain

import (
	"context"
	"fmt"
	"math/big"
	"time"
	"token-balance-reporter/core/model"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sirupsen/logrus"
)

type BlockchainClient struct {
	client  *ethclient.Client
	timeout time.Duration
}

// NewBlockchainClient dials ethURL. A positive timeout bounds every remote call.
func NewBlockchainClient(ethURL string, timeout time.Duration) (*BlockchainClient, error) {
	client, err := ethclient.Dial(ethURL)
	if err != nil {
		return nil, err
	}
	return &BlockchainClient{client: client, timeout: timeout}, nil
}

func (bc *BlockchainClient) Close() {
	bc.client.Close()
}

func (bc *BlockchainClient) GetDecimals(ctx context.Context, token common.Address) (uint8, error) {
	out, err := bc.callERC20(ctx, token, model.ERC20MethodDecimals)
	if err != nil {
		return 0, err
	}
	decimals, ok := out[0].(uint8)
	if !ok {
		return 0, fmt.Errorf("%w: decimals of %s: unexpected type %T", model.ErrorQueryFailure, token.Hex(), out[0])
	}
	return decimals, nil
}

func (bc *BlockchainClient) GetTokenBalance(ctx context.Context, token, wallet common.Address) (*big.Int, error) {
	out, err := bc.callERC20(ctx, token, model.ERC20MethodBalanceOf, wallet)
	if err != nil {
		return nil, err
	}
	balance, ok := out[0].(*big.Int)
	if !ok || balance == nil {
		return nil, fmt.Errorf("%w: balanceOf %s on %s: unexpected type %T", model.ErrorQueryFailure, wallet.Hex(), token.Hex(), out[0])
	}
	return balance, nil
}

func (bc *BlockchainClient) GetNativeBalance(ctx context.Context, wallet common.Address) (*big.Int, error) {
	ctx, cancel := bc.withTimeout(ctx)
	defer cancel()

	balance, err := bc.client.BalanceAt(ctx, wallet, nil)
	if err != nil {
		logrus.Errorf("GetNativeBalance %v err: %v", wallet.Hex(), err)
		return nil, fmt.Errorf("%w: native balance of %s: %v", model.ErrorQueryFailure, wallet.Hex(), err)
	}
	return balance, nil
}

// callERC20 runs a read only contract call and returns the unpacked outputs,
// which are guaranteed to be non empty.
func (bc *BlockchainClient) callERC20(ctx context.Context, token common.Address, method string, args ...interface{}) ([]interface{}, error) {
	data, err := model.ERC20ABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: pack %s: %v", model.ErrorQueryFailure, method, err)
	}

	ctx, cancel := bc.withTimeout(ctx)
	defer cancel()

	msg := ethereum.CallMsg{
		To:   &token,
		Data: data,
	}
	result, err := bc.client.CallContract(ctx, msg, nil)
	if err != nil {
		logrus.Errorf("call %s on %v err: %v", method, token.Hex(), err)
		return nil, fmt.Errorf("%w: %s on %s: %v", model.ErrorQueryFailure, method, token.Hex(), err)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("%w: %s on %s: empty return data, not an ERC-20 contract?", model.ErrorQueryFailure, method, token.Hex())
	}

	out, err := model.ERC20ABI.Unpack(method, result)
	if err != nil {
		return nil, fmt.Errorf("%w: unpack %s from %s: %v", model.ErrorQueryFailure, method, token.Hex(), err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s on %s: no outputs", model.ErrorQueryFailure, method, token.Hex())
	}
	return out, nil
}

func (bc *BlockchainClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if bc.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, bc.timeout)
}
