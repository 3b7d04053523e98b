package blockchain

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// erc20MetadataABI covers the read-only accessors of an ERC20 token.
const erc20MetadataABI = `[
	{"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
	{"type":"function","name":"totalSupply","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]}
]`

var erc20ABI = mustParseABI(erc20MetadataABI)

func mustParseABI(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(fmt.Sprintf("invalid erc20 abi: %v", err))
	}
	return parsed
}

// tokenHandle calls accessors on one deployed token.
type tokenHandle struct {
	session *session
	address common.Address
}

// Call packs the accessor, issues eth_call and renders the single return value.
func (h *tokenHandle) Call(ctx context.Context, accessor string) (string, error) {
	method, ok := erc20ABI.Methods[accessor]
	if !ok {
		return "", fmt.Errorf("unsupported accessor %q", accessor)
	}

	if err := h.session.limiter.Wait(ctx); err != nil {
		// Wait refuses up front when the next token lands past the deadline.
		if _, hasDeadline := ctx.Deadline(); hasDeadline && ctx.Err() == nil {
			return "", fmt.Errorf("rate limit: %w", context.DeadlineExceeded)
		}
		return "", err
	}

	data, err := erc20ABI.Pack(method.Name)
	if err != nil {
		return "", fmt.Errorf("failed to encode call: %w", err)
	}

	msg := ethereum.CallMsg{
		From: h.session.from,
		To:   &h.address,
		Gas:  h.session.gas,
		Data: data,
	}
	out, err := h.session.client.CallContract(ctx, msg, nil)
	if err != nil {
		return "", h.session.redact(err)
	}
	if len(out) == 0 {
		return "", fmt.Errorf("empty response from %s (no contract deployed?)", h.address.Hex())
	}

	values, err := erc20ABI.Unpack(method.Name, out)
	if err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(values) != 1 {
		return "", fmt.Errorf("expected one return value, got %d", len(values))
	}
	return formatValue(values[0]), nil
}

// formatValue renders a decoded return value in canonical string form. Integers are
// always decimal.
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case *big.Int:
		return val.String()
	case common.Address:
		return val.Hex()
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
