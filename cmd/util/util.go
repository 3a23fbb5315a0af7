package util

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rkvclient/rkv/lib/kv"
	"github.com/rkvclient/rkv/riak/common"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupClientFlags adds common store connection flags to a command
func SetupClientFlags(cmd *cobra.Command) {
	key := "endpoints"
	cmd.PersistentFlags().String(key, "http://localhost:8098", WrapString("The HTTP base URLs of the store nodes as a comma-separated list. Requests are spread over the endpoints round-robin"))

	key = "timeout"
	cmd.PersistentFlags().Int(key, 10, WrapString("The timeout in seconds of the client"))

	key = "retries"
	cmd.PersistentFlags().Int(key, 3, WrapString("How many times to retry sending a request"))

	key = "client-id"
	cmd.PersistentFlags().Bool(key, true, WrapString("Whether to send the process-wide client identity header"))

	key = "resolve-depth"
	cmd.PersistentFlags().Int(key, 0, WrapString("How often a sibling conflict may be re-resolved when the write-back conflicts again (0 = default)"))

	key = "resolver"
	cmd.PersistentFlags().String(key, "lww", WrapString("The conflict resolution strategy (lww or none)"))

	key = "log-level"
	cmd.PersistentFlags().String(key, "info", WrapString("The log level (debug, info, warn, error)"))
}

// InitClientConfig initializes configuration from environment variables
func InitClientConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("rkv")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	return viper.BindPFlags(cmd.InheritedFlags())
}

// GetClientConfig reads the client configuration from viper
func GetClientConfig() *common.ClientConfig {
	return &common.ClientConfig{
		Endpoints:       strings.Split(viper.GetString("endpoints"), ","),
		TimeoutSecond:   viper.GetInt("timeout"),
		RetryCount:      viper.GetInt("retries"),
		AddClientID:     viper.GetBool("client-id"),
		MaxResolveDepth: viper.GetInt("resolve-depth"),
		LogLevel:        viper.GetString("log-level"),
	}
}

// GetResolver creates a conflict resolver based on configuration
func GetResolver() (kv.IConflictResolver, error) {
	switch viper.GetString("resolver") {
	case "lww":
		return kv.NewLastWriteWinsResolver(), nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("invalid resolver %s", viper.GetString("resolver"))
	}
}
