package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidViewKey  = errors.New("invalid view key")
	ErrInvalidSpendKey = errors.New("invalid private key")

	ErrInvalidRange     = errors.New("the given scan range is invalid")
	ErrMissingRange     = errors.New("missing data about block range")
	ErrConflictingRange = errors.New("`last` can't be used with `start` or `end`")

	ErrHeightQueryFailed = errors.New("latest height query failed")
	ErrBlockFetchFailed  = errors.New("block fetch failed")
	ErrBlockParseFailed  = errors.New("failed to parse block from response")
	ErrDecryptionFailed  = errors.New("record decryption failed")
	ErrNoRecordsFound    = errors.New("no records found")

	// ErrTransitionNotFound is returned when the node has no transition for a serial number.
	ErrTransitionNotFound = errors.New("transition not found")
	// ErrSpentCheckFailed is returned by strict spent checks when the node could not answer.
	ErrSpentCheckFailed = errors.New("spent check failed")

	ErrInvalidRecord                   = errors.New("invalid record")
	ErrInvalidAddress                  = errors.New("invalid address")
	ErrTransactionBuildFailed          = errors.New("transaction build failed")
	ErrBroadcastFailed                 = errors.New("broadcast failed")
	ErrBroadcastAcknowledgmentMismatch = errors.New("the response does not match the transaction id")
)

// NodeError describes a non-success HTTP answer from the ledger node.
type NodeError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *NodeError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: node responded with status %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("%s: node responded with status %d: %s", e.Operation, e.StatusCode, e.Body)
}
