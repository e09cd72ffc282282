// Package model defines the domain models shared by the wallet scanner and transfer services.
package model

// Network names the ledger network path segment used by node endpoints.
type Network string

var (
	Testnet3 Network = "testnet3"
	Mainnet  Network = "mainnet"
)

func (n Network) String() string {
	return string(n)
}
