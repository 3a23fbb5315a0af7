package common

import (
	"fmt"
	"strconv"
	"strings"
)

// defaultMaxResolveDepth bounds the store-resolve-store recursion when a
// resolved value conflicts again with a racing write.
const defaultMaxResolveDepth = 3

// ClientConfig holds all configuration parameters for a store client.
type ClientConfig struct {
	// Endpoints lists the HTTP base URLs of the store nodes. Requests are
	// spread over the endpoints round-robin.
	Endpoints []string
	// TimeoutSecond is the per-request timeout enforced by the transport.
	// Zero disables the timeout.
	TimeoutSecond int
	// RetryCount is how often the transport retries a failed send.
	RetryCount int
	// AddClientID controls whether the process-wide client identity is sent
	// as a request header.
	AddClientID bool
	// MaxResolveDepth limits how often a conflict may be re-resolved when
	// the write-back of a resolved value conflicts again. Zero selects the
	// default.
	MaxResolveDepth int

	// Logging configuration
	LogLevel string
}

// ResolveDepth returns the configured re-resolution limit, falling back to
// the default for the zero value.
func (c *ClientConfig) ResolveDepth() int {
	if c.MaxResolveDepth <= 0 {
		return defaultMaxResolveDepth
	}
	return c.MaxResolveDepth
}

// String returns a formatted string representation of the client configuration
func (c *ClientConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	// General Client Settings
	addSection("Client Configuration")
	addField("Timeout", fmt.Sprintf("%d sec", c.TimeoutSecond))
	addField("Retry Count", strconv.Itoa(c.RetryCount))
	addField("Send Client ID", fmt.Sprintf("%t", c.AddClientID))
	addField("Max Resolve Depth", strconv.Itoa(c.ResolveDepth()))
	addField("Log Level", c.LogLevel)

	// Endpoints
	addSection("Endpoints")
	for i, endpoint := range c.Endpoints {
		addField(strconv.Itoa(i), endpoint)
	}

	return sb.String()
}
