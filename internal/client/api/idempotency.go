package api

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateIdempotencyKey produces a fresh client-side identifier for one
// payment submission intent: a millisecond timestamp prefix plus a random
// UUID suffix. The server is the deduplication authority; the client's only
// obligation is that distinct submissions get distinct keys.
func GenerateIdempotencyKey() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString())
}
