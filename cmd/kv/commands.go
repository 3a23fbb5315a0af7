package kv

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rkvclient/rkv/lib/kv"
	"github.com/spf13/cobra"
)

var (
	putContentType string
	putBinIndexes  []string
	putIntIndexes  []string
	putReturnBody  bool

	queryInt bool
	queryMin int64
	queryMax int64

	getCmd = &cobra.Command{
		Use:   "get [bucket] [key]",
		Short: "Reads the value for a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bucket, key := args[0], args[1]
			if value, found, err := riakClient.Fetch(bucket, key, resolver); err != nil {
				return err
			} else if !found {
				fmt.Printf("bucket=%s, key=%s, found=false\n", bucket, key)
			} else {
				printValue(bucket, key, *value)
			}
			return nil
		},
	}
	putCmd = &cobra.Command{
		Use:   "put [bucket] [key] [value]",
		Short: "Stores the value for a key",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			bucket, key := args[0], args[1]
			value := kv.NewValue([]byte(args[2]), putContentType)

			var err error
			value, err = addIndexes(value)
			if err != nil {
				return err
			}

			if putReturnBody {
				stored, found, err := riakClient.StoreWithBody(bucket, key, value, resolver)
				if err != nil {
					return err
				}
				if !found {
					fmt.Println("stored (no body returned)")
				} else {
					printValue(bucket, key, *stored)
				}
				return nil
			}

			if err := riakClient.Store(bucket, key, value); err != nil {
				return err
			}
			fmt.Println("stored successfully")
			return nil
		},
	}
	delCmd = &cobra.Command{
		Use:   "del [bucket] [key]",
		Short: "Deletes a key value pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := riakClient.Delete(args[0], args[1]); err != nil {
				return err
			}
			fmt.Println("deleted successfully")
			return nil
		},
	}
	queryCmd = &cobra.Command{
		Use:   "query [bucket] [index] [value]",
		Short: "Fetches all values whose secondary index matches",
		Long: `Fetches all values whose secondary index matches the given value.
With --int the index is an integer index, and --min/--max replace
the value argument with a closed integer range.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			bucket, name := args[0], args[1]

			query, err := buildQuery(cmd, name, args[2:])
			if err != nil {
				return err
			}

			values, err := riakClient.FetchByIndex(bucket, query, resolver)
			if err != nil {
				return err
			}

			fmt.Printf("bucket=%s, index=%s, matches=%d\n", bucket, name, len(values))
			for _, v := range values {
				fmt.Printf("  etag=%s, content-type=%s, data=%s\n", v.ETag, v.ContentType, v.Data)
			}
			return nil
		},
	}
)

func init() {
	putCmd.Flags().StringVar(&putContentType, "content-type", "application/octet-stream", "Content type of the stored value")
	putCmd.Flags().StringSliceVar(&putBinIndexes, "index-bin", nil, "Binary secondary index as name=value (repeatable)")
	putCmd.Flags().StringSliceVar(&putIntIndexes, "index-int", nil, "Integer secondary index as name=value (repeatable)")
	putCmd.Flags().BoolVar(&putReturnBody, "return-body", false, "Ask the store to return the stored value")

	queryCmd.Flags().BoolVar(&queryInt, "int", false, "Query an integer index instead of a binary one")
	queryCmd.Flags().Int64Var(&queryMin, "min", 0, "Lower bound of an integer range query (inclusive)")
	queryCmd.Flags().Int64Var(&queryMax, "max", 0, "Upper bound of an integer range query (inclusive)")
}

// addIndexes attaches the --index-bin and --index-int flags to a value
func addIndexes(value kv.Value) (kv.Value, error) {
	for _, spec := range putBinIndexes {
		name, raw, err := splitIndexSpec(spec)
		if err != nil {
			return value, err
		}
		value = value.WithIndex(kv.NewBinIndex(name, raw))
	}
	for _, spec := range putIntIndexes {
		name, raw, err := splitIndexSpec(spec)
		if err != nil {
			return value, err
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return value, fmt.Errorf("integer index %s must have a numeric value: %w", name, err)
		}
		value = value.WithIndex(kv.NewIntIndex(name, n))
	}
	return value, nil
}

func splitIndexSpec(spec string) (name, value string, err error) {
	name, value, ok := strings.Cut(spec, "=")
	if !ok || name == "" {
		return "", "", fmt.Errorf("index %q must have the form name=value", spec)
	}
	return name, value, nil
}

// buildQuery turns the query command arguments and flags into an IndexQuery
func buildQuery(cmd *cobra.Command, name string, rest []string) (kv.IndexQuery, error) {
	ranged := cmd.Flags().Changed("min") || cmd.Flags().Changed("max")

	if ranged {
		if len(rest) != 0 {
			return kv.IndexQuery{}, fmt.Errorf("a range query takes no value argument")
		}
		return kv.RangeInt(name, queryMin, queryMax), nil
	}

	if len(rest) != 1 {
		return kv.IndexQuery{}, fmt.Errorf("an exact-match query needs a value argument")
	}

	if queryInt {
		n, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return kv.IndexQuery{}, fmt.Errorf("value must be a number for an integer index: %w", err)
		}
		return kv.MatchInt(name, n), nil
	}
	return kv.MatchBin(name, rest[0]), nil
}

func printValue(bucket, key string, value kv.Value) {
	fmt.Printf("bucket=%s, key=%s, found=true\n", bucket, key)
	fmt.Printf("  content-type=%s, etag=%s, last-modified=%s\n",
		value.ContentType, value.ETag, value.LastModified)
	for _, idx := range value.Indexes {
		if idx.Kind == kv.IndexInt {
			fmt.Printf("  index %s_int=%d\n", idx.Name, idx.IntValue)
		} else {
			fmt.Printf("  index %s_bin=%s\n", idx.Name, idx.StrValue)
		}
	}
	fmt.Printf("  data=%s\n", value.Data)
}
