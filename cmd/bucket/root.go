package bucket

import (
	"fmt"

	"github.com/rkvclient/rkv/cmd/util"
	"github.com/rkvclient/rkv/lib/kv"
	"github.com/rkvclient/rkv/riak/client"
	"github.com/rkvclient/rkv/riak/common"
	riakhttp "github.com/rkvclient/rkv/riak/transport/http"
	"github.com/spf13/cobra"
)

var (
	riakClient kv.IClient

	setNVal          int
	setAllowMult     bool
	setLastWriteWins bool
	setBackend       string

	// BucketCommands represents the bucket command group
	BucketCommands = &cobra.Command{
		Use:               "bucket",
		Short:             "Read and write bucket properties",
		PersistentPreRunE: setupBucketClient,
	}

	propsCmd = &cobra.Command{
		Use:   "props [bucket]",
		Short: "Reads the properties of a bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			props, err := riakClient.GetBucketProperties(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("bucket=%s\n", args[0])
			if props.NVal != nil {
				fmt.Printf("  n_val=%d\n", *props.NVal)
			}
			if props.AllowMult != nil {
				fmt.Printf("  allow_mult=%t\n", *props.AllowMult)
			}
			if props.LastWriteWins != nil {
				fmt.Printf("  last_write_wins=%t\n", *props.LastWriteWins)
			}
			if props.Backend != "" {
				fmt.Printf("  backend=%s\n", props.Backend)
			}
			return nil
		},
	}

	setPropsCmd = &cobra.Command{
		Use:   "set-props [bucket]",
		Short: "Writes the properties of a bucket",
		Long: `Writes bucket properties. Only properties whose flag is given are
sent, all others keep their current value on the server.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var props kv.BucketProperties
			if cmd.Flags().Changed("n-val") {
				props.NVal = kv.Int(setNVal)
			}
			if cmd.Flags().Changed("allow-mult") {
				props.AllowMult = kv.Bool(setAllowMult)
			}
			if cmd.Flags().Changed("last-write-wins") {
				props.LastWriteWins = kv.Bool(setLastWriteWins)
			}
			if cmd.Flags().Changed("backend") {
				props.Backend = setBackend
			}

			if err := riakClient.SetBucketProperties(args[0], props); err != nil {
				return err
			}
			fmt.Println("properties set successfully")
			return nil
		},
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common client flags to the bucket command
	util.SetupClientFlags(BucketCommands)

	setPropsCmd.Flags().IntVar(&setNVal, "n-val", 3, "Replication factor of the bucket")
	setPropsCmd.Flags().BoolVar(&setAllowMult, "allow-mult", false, "Whether the bucket keeps sibling versions on conflict")
	setPropsCmd.Flags().BoolVar(&setLastWriteWins, "last-write-wins", false, "Whether the bucket resolves conflicts by timestamp")
	setPropsCmd.Flags().StringVar(&setBackend, "backend", "", "Storage backend of the bucket")

	// Add subcommands
	BucketCommands.AddCommand(propsCmd)
	BucketCommands.AddCommand(setPropsCmd)
}

// setupBucketClient initializes the HTTP store client
func setupBucketClient(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	// Get client configuration
	config := util.GetClientConfig()
	common.InitLoggers(*config)

	// Create the KV store client
	var err error
	riakClient, err = client.NewClient(
		*config,
		riakhttp.NewHTTPClientTransport(),
	)

	return err
}
