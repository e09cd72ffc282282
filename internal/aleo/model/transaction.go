package model

import "encoding/json"

// TransactionType distinguishes deployments from executions.
type TransactionType string

const (
	TransactionDeploy  TransactionType = "deploy"
	TransactionExecute TransactionType = "execute"
)

// TransactionID is the content derived transaction identifier ("at1...").
type TransactionID string

// Transaction is an opaque transaction produced by the execution engine.
type Transaction struct {
	ID   TransactionID
	Type TransactionType
	// Raw is the canonical JSON representation accepted by the broadcast endpoint.
	Raw json.RawMessage
}

// TransferRequest describes a credits transfer consuming one owned record.
type TransferRequest struct {
	PrivateKey PrivateKey
	Record     PlaintextRecord
	Amount     uint64
	Recipient  Address
}

// TransferProgram and TransferFunction name the native credits transfer.
const (
	TransferProgram  = "credits.aleo"
	TransferFunction = "transfer"
)
