package kv

import (
	"github.com/rkvclient/rkv/cmd/util"
	"github.com/rkvclient/rkv/lib/kv"
	"github.com/rkvclient/rkv/riak/client"
	"github.com/rkvclient/rkv/riak/common"
	riakhttp "github.com/rkvclient/rkv/riak/transport/http"
	"github.com/spf13/cobra"
)

var (
	riakClient kv.IClient
	resolver   kv.IConflictResolver

	// KeyValueCommands represents the KV command group
	KeyValueCommands = &cobra.Command{
		Use:               "kv",
		Short:             "Perform key-value operations against a store",
		PersistentPreRunE: setupKVClient,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common client flags to the KV command
	util.SetupClientFlags(KeyValueCommands)

	// Add subcommands
	KeyValueCommands.AddCommand(getCmd)
	KeyValueCommands.AddCommand(putCmd)
	KeyValueCommands.AddCommand(delCmd)
	KeyValueCommands.AddCommand(queryCmd)
	KeyValueCommands.AddCommand(perfTestCmd)
}

// setupKVClient initializes the HTTP store client
func setupKVClient(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	// Get client configuration
	config := util.GetClientConfig()
	common.InitLoggers(*config)

	// Get the conflict resolver
	var err error
	resolver, err = util.GetResolver()
	if err != nil {
		return err
	}

	// Create the KV store client
	riakClient, err = client.NewClient(
		*config,
		riakhttp.NewHTTPClientTransport(),
	)

	return err
}
