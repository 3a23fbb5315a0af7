package cmd

import (
	"fmt"
	"os"

	"github.com/rkvclient/rkv/cmd/bucket"
	"github.com/rkvclient/rkv/cmd/kv"
	"github.com/spf13/cobra"
)

const (
	Version = "0.3.1"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "rkv",
		Short: "client for Riak-compatible key-value stores",
		Long: fmt.Sprintf(`rKV (v%s)

An HTTP client for Riak-compatible distributed key-value stores with
typed values, sibling-conflict resolution and secondary-index queries.`, Version),
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of rkv",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("rKV v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(kv.KeyValueCommands)
	RootCmd.AddCommand(bucket.BucketCommands)
	RootCmd.AddCommand(versionCmd)
}

// Execute runs the root command. It is called once from main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
