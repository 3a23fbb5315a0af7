package common

import (
	"strings"
	"testing"

	"github.com/lni/dragonboat/v4/logger"
)

func TestResolveDepth(t *testing.T) {
	c := ClientConfig{}
	if got := c.ResolveDepth(); got != defaultMaxResolveDepth {
		t.Errorf("expected the default depth %d, got %d", defaultMaxResolveDepth, got)
	}

	c.MaxResolveDepth = 7
	if got := c.ResolveDepth(); got != 7 {
		t.Errorf("expected the configured depth, got %d", got)
	}
}

func TestConfigString(t *testing.T) {
	c := ClientConfig{
		Endpoints:     []string{"http://node1:8098", "http://node2:8098"},
		TimeoutSecond: 10,
		RetryCount:    3,
	}

	s := c.String()
	for _, want := range []string{"CLIENT CONFIGURATION", "ENDPOINTS", "http://node1:8098", "http://node2:8098", "10 sec"} {
		if !strings.Contains(s, want) {
			t.Errorf("expected config string to contain %q:\n%s", want, s)
		}
	}
}

func TestClientIDStable(t *testing.T) {
	first := ClientID()
	if first == "" {
		t.Fatalf("expected a non-empty client id")
	}
	if second := ClientID(); second != first {
		t.Errorf("expected a stable client id, got %q then %q", first, second)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]logger.LogLevel{
		"debug":   logger.DEBUG,
		"info":    logger.INFO,
		"":        logger.INFO,
		"warn":    logger.WARNING,
		"warning": logger.WARNING,
		"ERROR":   logger.ERROR,
	}
	for input, want := range tests {
		if got := parseLogLevel(input); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", input, got, want)
		}
	}
}
