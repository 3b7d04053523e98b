package signer

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/tokencheck/internal/domain/config"
	bip32 "github.com/tyler-smith/go-bip32"
	bip39 "github.com/tyler-smith/go-bip39"
)

// ErrInvalidMnemonic is returned when the credential is not a valid BIP-39 phrase.
// The phrase itself is never included.
var ErrInvalidMnemonic = errors.New("credential is not a valid BIP-39 mnemonic")

// DerivationPath is the first account on the standard Ethereum path.
const DerivationPath = "m/44'/60'/0'/0/0"

// Account is a derived signing account.
type Account struct {
	Address common.Address
	key     *ecdsa.PrivateKey
}

// PrivateKey exposes the key for transaction signing.
func (a *Account) PrivateKey() *ecdsa.PrivateKey { return a.key }

// HDWallet derives accounts from mnemonic credentials
type HDWallet struct{}

// NewHDWallet creates a new HD wallet deriver
func NewHDWallet() *HDWallet {
	return &HDWallet{}
}

// Derive returns the account at DerivationPath for the given mnemonic.
func (w *HDWallet) Derive(mnemonic config.Secret) (*Account, error) {
	phrase := strings.Join(strings.Fields(mnemonic.Reveal()), " ")
	if !bip39.IsMnemonicValid(phrase) {
		return nil, ErrInvalidMnemonic
	}

	seed := bip39.NewSeed(phrase, "")
	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}

	hardened := func(i uint32) uint32 { return i + bip32.FirstHardenedChild }
	for _, idx := range []uint32{hardened(44), hardened(60), hardened(0), 0, 0} {
		key, err = key.NewChildKey(idx)
		if err != nil {
			return nil, fmt.Errorf("failed to derive %s: %w", DerivationPath, err)
		}
	}

	pk, err := crypto.ToECDSA(key.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to load derived key: %w", err)
	}

	return &Account{
		Address: crypto.PubkeyToAddress(pk.PublicKey),
		key:     pk,
	}, nil
}
