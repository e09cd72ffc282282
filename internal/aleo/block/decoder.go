// Package block extracts the record outputs the scanner needs from raw ledger blocks.
package block

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/model"
	"github.com/SatoKentaNayoro/aleo-wallet-test/pkg/safe"
	"github.com/itchyny/gojq"
)

// DefaultExpression walks every confirmed transaction of a block, its execution
// transitions and its fee transition, and yields the record outputs in document order.
const DefaultExpression = `{
  height: .header.metadata.height,
  hash: .block_hash,
  records: [
    (.transactions // [])[]
    | (.transaction // .)
    | ((.execution.transitions // [])[], ((.fee // .additional_fee) | .transition? // empty))
    | (.outputs // [])[]
    | select(.type == "record")
    | {commitment: .id, record: .value}
  ]
}`

// Decoder runs a compiled jq program over block JSON.
// The program must yield one object with "records": [{commitment, record}]
// and may yield "height" and "hash".
type Decoder struct {
	code *gojq.Code
}

// NewDecoder compiles expr. An empty expression selects DefaultExpression.
func NewDecoder(expr string) (*Decoder, error) {
	if expr == "" {
		expr = DefaultExpression
	}
	query, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("parse block expression: %w", err)
	}
	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("compile block expression: %w", err)
	}
	return &Decoder{code: code}, nil
}

// Decode extracts the record entries of one block. fallbackHeight is used when
// the block does not carry its height.
func (d *Decoder) Decode(ctx context.Context, raw json.RawMessage, fallbackHeight uint32) (model.Block, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.Block{}, fmt.Errorf("%w: %v", model.ErrBlockParseFailed, err)
	}

	iter := d.code.RunWithContext(ctx, doc)
	v, ok := iter.Next()
	if !ok {
		return model.Block{}, fmt.Errorf("%w: block expression produced no value", model.ErrBlockParseFailed)
	}
	if err, isErr := v.(error); isErr {
		return model.Block{}, fmt.Errorf("%w: %v", model.ErrBlockParseFailed, err)
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return model.Block{}, fmt.Errorf("%w: block expression produced %T, want object", model.ErrBlockParseFailed, v)
	}

	block := model.Block{Height: fallbackHeight}
	if h, present := obj["height"]; present && h != nil {
		height, err := toHeight(h)
		if err != nil {
			return model.Block{}, fmt.Errorf("%w: %v", model.ErrBlockParseFailed, err)
		}
		block.Height = height
	}
	if hash, ok := obj["hash"].(string); ok {
		block.Hash = hash
	}

	records, err := toRecords(obj["records"])
	if err != nil {
		return model.Block{}, fmt.Errorf("%w: block %d: %v", model.ErrBlockParseFailed, block.Height, err)
	}
	block.Records = records
	return block, nil
}

func toRecords(v any) ([]model.RecordEntry, error) {
	if v == nil {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("records is %T, want array", v)
	}

	records := make([]model.RecordEntry, 0, len(items))
	for i, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("record %d is %T, want object", i, item)
		}
		commitment, _ := entry["commitment"].(string)
		ciphertext, _ := entry["record"].(string)
		if commitment == "" || ciphertext == "" {
			return nil, fmt.Errorf("record %d is missing commitment or ciphertext", i)
		}
		records = append(records, model.RecordEntry{
			Commitment: commitment,
			Ciphertext: model.CiphertextRecord(ciphertext),
		})
	}
	return records, nil
}

func toHeight(v any) (uint32, error) {
	switch n := v.(type) {
	case int:
		return safe.Uint32(n)
	case float64:
		if n != math.Trunc(n) || n < 0 || n > math.MaxUint32 {
			return 0, fmt.Errorf("height %v is not a u32", n)
		}
		return uint32(n), nil
	default:
		return 0, fmt.Errorf("height is %T, want number", v)
	}
}
