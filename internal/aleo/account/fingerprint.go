package account

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/model"
)

// Fingerprint returns a stable, non-reversible identifier of a view key.
func Fingerprint(vk model.ViewKey) string {
	sum := sha256.Sum256([]byte(vk))
	return hex.EncodeToString(sum[:16])
}
