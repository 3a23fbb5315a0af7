package common

import (
	"sync"

	"github.com/google/uuid"
)

var (
	clientID     string
	clientIDOnce sync.Once
)

// ClientID returns the process-wide client identity. It is generated once on
// first use and read-only afterwards, so it needs no further
// synchronization. The identity is only put on the wire when
// ClientConfig.AddClientID is set.
func ClientID() string {
	clientIDOnce.Do(func() {
		clientID = uuid.NewString()
	})
	return clientID
}
