package node

import (
	"net/http"
	"time"
)

type (
	// Doer performs HTTP requests. *http.Client satisfies it.
	Doer interface {
		Do(req *http.Request) (*http.Response, error)
	}
	// Metrics records node call outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

const (
	opLatestHeight     = "latest_height"
	opBlocks           = "blocks"
	opFindTransitionID = "find_transition_id"
	opBroadcast        = "broadcast"

	errorBodyLimit = 4 << 10
)
