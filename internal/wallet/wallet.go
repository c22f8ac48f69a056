// Package wallet creates and validates the EVM keys a scaffolded agent is
// controlled by.
package wallet

import (
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Keypair is a freshly generated agent wallet. PrivateKeyHex is handed to
// the env template only; callers must not log it.
type Keypair struct {
	Address       string
	PrivateKeyHex string
}

// Generate creates a new secp256k1 keypair and returns the checksummed
// address with the hex-encoded private key.
func Generate() (*Keypair, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate wallet key: %w", err)
	}
	return &Keypair{
		Address:       crypto.PubkeyToAddress(key.PublicKey).Hex(),
		PrivateKeyHex: hex.EncodeToString(crypto.FromECDSA(key)),
	}, nil
}

// ValidateAddress checks that s is a well-formed hex address.
func ValidateAddress(s string) error {
	if !common.IsHexAddress(s) {
		return fmt.Errorf("invalid wallet address: %s", s)
	}
	return nil
}
