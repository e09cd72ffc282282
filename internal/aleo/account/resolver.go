// Package account parses and validates the string encoded key material of a wallet invocation.
package account

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/model"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	viewKeyPrefix    = "AViewKey1"
	privateKeyPrefix = "APrivateKey1"
	addressHRP       = "aleo"

	scalarLen      = 32
	addressDataLen = 32
)

var (
	viewKeyPrefixBytes    = []byte{14, 138, 223, 204, 247, 224, 122}
	privateKeyPrefixBytes = []byte{127, 134, 189, 116, 210, 221, 210, 137, 145, 18, 253}
)

// ParseViewKey validates the encoding of a view key.
func ParseViewKey(s string) (model.ViewKey, error) {
	if err := checkKey(strings.TrimSpace(s), viewKeyPrefix, viewKeyPrefixBytes); err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrInvalidViewKey, err)
	}
	return model.ViewKey(strings.TrimSpace(s)), nil
}

// ParsePrivateKey validates the encoding of a private (spend) key.
func ParsePrivateKey(s string) (model.PrivateKey, error) {
	if err := checkKey(strings.TrimSpace(s), privateKeyPrefix, privateKeyPrefixBytes); err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrInvalidSpendKey, err)
	}
	return model.PrivateKey(strings.TrimSpace(s)), nil
}

// ParseAddress validates a bech32m account address.
func ParseAddress(s string) (model.Address, error) {
	s = strings.TrimSpace(s)
	hrp, data, version, err := bech32.DecodeGeneric(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrInvalidAddress, err)
	}
	if hrp != addressHRP {
		return "", fmt.Errorf("%w: unexpected prefix %q", model.ErrInvalidAddress, hrp)
	}
	if version != bech32.VersionM {
		return "", fmt.Errorf("%w: checksum is not bech32m", model.ErrInvalidAddress)
	}
	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrInvalidAddress, err)
	}
	if len(payload) != addressDataLen {
		return "", fmt.Errorf("%w: payload is %d bytes, want %d", model.ErrInvalidAddress, len(payload), addressDataLen)
	}
	return model.Address(strings.ToLower(s)), nil
}

// Resolve parses the mandatory view key and the optional spend key.
// A malformed view key fails the call. A malformed spend key does not: the
// account is returned in view-only mode with SpendKeyMalformed so callers can
// report the downgrade.
func Resolve(spendKey *string, viewKey string) (model.Account, error) {
	vk, err := ParseViewKey(viewKey)
	if err != nil {
		return model.Account{}, err
	}

	acct := model.Account{ViewKey: vk, SpendKeyStatus: model.SpendKeyAbsent}
	if spendKey == nil || strings.TrimSpace(*spendKey) == "" {
		return acct, nil
	}

	pk, err := ParsePrivateKey(*spendKey)
	if err != nil {
		acct.SpendKeyStatus = model.SpendKeyMalformed
		return acct, nil
	}
	acct.SpendKey = pk
	acct.SpendKeyStatus = model.SpendKeyValid
	return acct, nil
}

func checkKey(s, textPrefix string, bytePrefix []byte) error {
	if !strings.HasPrefix(s, textPrefix) {
		return fmt.Errorf("missing %q prefix", textPrefix)
	}
	raw := base58.Decode(s)
	if len(raw) == 0 {
		return fmt.Errorf("not base58 encoded")
	}
	if want := len(bytePrefix) + scalarLen; len(raw) != want {
		return fmt.Errorf("decoded length is %d bytes, want %d", len(raw), want)
	}
	if !bytes.HasPrefix(raw, bytePrefix) {
		return fmt.Errorf("unexpected key prefix")
	}
	return nil
}
