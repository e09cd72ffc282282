package service

import (
	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/model"
	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/node"
	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/service/scanner"
	"go.uber.org/zap"
)

// NodeScannerProvider opens a node client and a scanner for every endpoint
// a scan is requested against.
type NodeScannerProvider struct {
	Network     model.Network
	Doer        node.Doer
	NodeRPS     int
	NodeMetrics node.Metrics
	Decoder     scanner.BlockDecoder
	Cipher      scanner.RecordCipher
	Metrics     scanner.ScannerMetrics
	Options     []scanner.Option
	Logger      *zap.Logger
}

func (p *NodeScannerProvider) ForEndpoint(endpoint string) (RecordScanner, error) {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []node.Option{node.WithLogger(logger.Named("node"))}
	if p.Doer != nil {
		opts = append(opts, node.WithDoer(p.Doer))
	}
	if p.NodeMetrics != nil {
		opts = append(opts, node.WithMetrics(p.NodeMetrics))
	}
	if p.NodeRPS > 0 {
		opts = append(opts, node.WithRateLimit(p.NodeRPS))
	}

	client, err := node.NewClient(endpoint, p.Network, opts...)
	if err != nil {
		return nil, err
	}
	return scanner.NewService(client, p.Decoder, p.Cipher, p.Metrics, p.Network, logger.Named("scanner"), p.Options...)
}
