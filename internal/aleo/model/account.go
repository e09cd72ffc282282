package model

// ViewKey is the string form of a key that detects and decrypts owned records.
type ViewKey string

// PrivateKey is the string form of the spend key.
type PrivateKey string

// Address is the bech32m encoded account address.
type Address string

// SpendKeyStatus reports how the optional spend key was resolved.
type SpendKeyStatus int

const (
	// SpendKeyAbsent means no spend key was supplied; scans run in view-only mode.
	SpendKeyAbsent SpendKeyStatus = iota
	// SpendKeyValid means the spend key parsed and spent records can be filtered out.
	SpendKeyValid
	// SpendKeyMalformed means a spend key was supplied but did not parse; scans degrade to view-only mode.
	SpendKeyMalformed
)

func (s SpendKeyStatus) String() string {
	switch s {
	case SpendKeyAbsent:
		return "absent"
	case SpendKeyValid:
		return "valid"
	case SpendKeyMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Account is the parsed key material of one invocation.
type Account struct {
	ViewKey        ViewKey
	SpendKey       PrivateKey
	SpendKeyStatus SpendKeyStatus
}

// CanCheckSpent reports whether serial numbers can be derived for this account.
func (a Account) CanCheckSpent() bool {
	return a.SpendKeyStatus == SpendKeyValid
}
