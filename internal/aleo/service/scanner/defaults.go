package scanner

import "time"

const (
	// pageSize is the maximum number of blocks requested per page.
	pageSize uint32 = 50
	// decodeWorkers bounds concurrent block decoding within a page.
	decodeWorkers = 4

	recordBatcherCapacity      = 1000
	recordBatcherFlushInterval = 5 * time.Second
	recordBatcherRPS           = 20
)
