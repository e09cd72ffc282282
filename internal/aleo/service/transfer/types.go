package transfer

import (
	"context"
	"time"

	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/engine"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
//go:generate mockgen -destination=executor_mock_test.go -package=$GOPACKAGE github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/engine Executor

type (
	ExecutorFactory interface {
		New() (engine.Executor, error)
	}
	Broadcaster interface {
		Broadcast(ctx context.Context, endpoint string, payload []byte) (string, error)
	}
	TransferMetrics interface {
		ObserveBuild(err error, started time.Time)
		ObserveBroadcast(err error, started time.Time)
	}
)
