package model

// CiphertextRecord is an encrypted record as published on chain ("record1...").
type CiphertextRecord string

// PlaintextRecord is the decrypted form of an owned record.
type PlaintextRecord string

// SerialNumber marks a record spent once observed on chain.
type SerialNumber string

// RecordEntry pairs a record commitment with its ciphertext.
type RecordEntry struct {
	Commitment string
	Ciphertext CiphertextRecord
}

// Block is the part of a ledger block the scanner consumes.
type Block struct {
	Height  uint32
	Hash    string
	Records []RecordEntry
}

// ScanRange is an inclusive block height window.
type ScanRange struct {
	Start uint32
	End   uint32
}

// Len returns the number of heights covered by the range.
func (r ScanRange) Len() uint64 {
	if r.End < r.Start {
		return 0
	}
	return uint64(r.End-r.Start) + 1
}

// OwnedRecord is a decrypted record together with where it was found.
type OwnedRecord struct {
	Network     Network
	BlockHeight uint32
	Commitment  string
	Plaintext   PlaintextRecord
	// ViewKeyFingerprint identifies the scanning view key without storing it.
	ViewKeyFingerprint string
}
