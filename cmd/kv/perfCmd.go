package kv

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	gometrics "github.com/rcrowley/go-metrics"
	"github.com/rkvclient/rkv/cmd/util"
	"github.com/rkvclient/rkv/lib/kv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	perfTestCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Performance testing tool for Riak-compatible stores",
		Long:    "",
		RunE:    runPerf,
		PreRunE: processPerfConfig,
	}
	perfBucket           = "__test"
	perfLargeValueSizeKB = 100
	perfNumThreads       = 10
	perfKeySpread        = 100
	perfOpsPerThread     = 100
	perfSkip             = make([]string, 0)
)

func init() {
	// add flags
	key := "skip"
	perfTestCmd.Flags().String(key, "", util.WrapString("Benchmarks to skip (comma separated - e.g. store,fetch)"))
	key = "threads"
	perfTestCmd.Flags().Int(key, 10, util.WrapString("Number of threads to use for the benchmark"))
	key = "ops"
	perfTestCmd.Flags().Int(key, 100, util.WrapString("Number of operations per thread"))
	key = "large-value-size"
	perfTestCmd.Flags().Int(key, 1000, util.WrapString("How large the value for the store-large test should be (in KB)"))
	key = "keys"
	perfTestCmd.Flags().Int(key, 100, util.WrapString("How many different keys to use for the tests"))
	key = "bucket"
	perfTestCmd.Flags().String(key, "__test", util.WrapString("The bucket to run the benchmark in"))
	key = "csv"
	perfTestCmd.Flags().String(key, "", util.WrapString("Optional path to save benchmark results as CSV"))
}

func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	perfBucket = viper.GetString("bucket")
	perfLargeValueSizeKB = viper.GetInt("large-value-size")
	perfKeySpread = viper.GetInt("keys")
	perfNumThreads = viper.GetInt("threads")
	perfOpsPerThread = viper.GetInt("ops")
	perfSkip = strings.Split(viper.GetString("skip"), ",")

	return nil
}

func runPerf(_ *cobra.Command, _ []string) error {

	fmt.Println("Performance testing tool for Riak-compatible stores")

	// Print configuration
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println(util.GetClientConfig().String())
	fmt.Printf("Threads: %d, Ops/Thread: %d, Bucket: %s\n", perfNumThreads, perfOpsPerThread, perfBucket)
	fmt.Println()

	fmt.Println("starting tests...")

	// Registry holding one timer per test
	registry := gometrics.NewRegistry()
	var order []string

	runTimed := func(test string, setup, op, cleanup func(key string) error) {
		timer := gometrics.GetOrRegisterTimer(test, registry)
		order = append(order, test)

		if shouldSkip(test) {
			printTimer(test, timer)
			return
		}

		getKey, iter := perfKeys(test)

		if setup != nil {
			iter(func(k string) {
				if err := setup(k); err != nil {
					log.Printf("(%s) - setup error: %v\n", test, err)
				}
			})
		}

		var wg sync.WaitGroup
		for t := 0; t < perfNumThreads; t++ {
			wg.Add(1)
			go func(offset int) {
				defer wg.Done()
				for i := 0; i < perfOpsPerThread; i++ {
					key := getKey(offset*perfOpsPerThread + i)
					timer.Time(func() {
						if err := op(key); err != nil {
							log.Printf("(%s) - error: %v\n", test, err)
						}
					})
				}
			}(t)
		}
		wg.Wait()

		if cleanup != nil {
			iter(func(k string) {
				if err := cleanup(k); err != nil {
					log.Printf("(%s) - cleanup error: %v\n", test, err)
				}
			})
		}

		printTimer(test, timer)
	}

	smallValue := kv.NewValue([]byte("test"), "text/plain")
	largeValue := kv.NewValue(make([]byte, perfLargeValueSizeKB*1024), "application/octet-stream")

	storeOp := func(v kv.Value) func(string) error {
		return func(key string) error { return riakClient.Store(perfBucket, key, v) }
	}
	deleteOp := func(key string) error { return riakClient.Delete(perfBucket, key) }
	fetchOp := func(key string) error {
		_, _, err := riakClient.Fetch(perfBucket, key, resolver)
		return err
	}

	runTimed("store", nil, storeOp(smallValue), deleteOp)
	runTimed("store-large", nil, storeOp(largeValue), deleteOp)
	runTimed("fetch", storeOp(smallValue), fetchOp, deleteOp)
	runTimed("fetch-miss", nil, fetchOp, nil) // 404s count as successful fetches
	runTimed("delete", storeOp(smallValue), deleteOp, nil)

	var mixedCounter atomic.Int64
	runTimed("mixed", storeOp(smallValue), func(key string) error {
		switch mixedCounter.Add(1) % 3 {
		case 0:
			return riakClient.Store(perfBucket, key, smallValue)
		case 1:
			_, _, err := riakClient.Fetch(perfBucket, key, resolver)
			return err
		default:
			return riakClient.Delete(perfBucket, key)
		}
	}, deleteOp)

	// Write results to csv if specified
	if csvPath := viper.GetString("csv"); csvPath != "" {
		fmt.Printf("\nExporting results to CSV: %s\n", csvPath)
		if err := writeResultsToCSV(csvPath, registry, order); err != nil {
			return fmt.Errorf("failed to export results to CSV: %v", err)
		}
		fmt.Println("Export complete")
	}

	return nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func shouldSkip(test string) bool {
	// Check if the test is in the skip list
	for _, skip := range perfSkip {
		if test == skip {
			return true
		}
	}
	return false
}

// creates an array of test keys and functions to work with them
func perfKeys(prefix string) (func(int) string, func(func(string))) {
	keys := make([]string, perfKeySpread)
	for i := 0; i < perfKeySpread; i++ {
		keys[i] = fmt.Sprintf("perf-%s-%d", prefix, i)
	}

	// Function to get a key by index (with wraparound)
	getKey := func(i int) string {
		return keys[i%perfKeySpread]
	}

	// Function to iterate over all keys and apply a function to each
	iterateKeys := func(fn func(string)) {
		for _, key := range keys {
			fn(key)
		}
	}

	return getKey, iterateKeys
}

// printTimer prints the result of a benchmark test in a formatted way
func printTimer(test string, timer gometrics.Timer) {
	if timer.Count() == 0 {
		fmt.Printf("%-20sskipped\n", test)
		return
	}

	mean := time.Duration(timer.Mean())
	p99 := time.Duration(timer.Percentile(0.99))
	opsPerSec := 1.0 / (float64(timer.Mean()) / 1e9)

	fmt.Printf("%-20s%s/op (p99 %s)\t%.0f ops/sec\n", test, mean, p99, opsPerSec)
}

// writeResultsToCSV writes benchmark results to a CSV file
func writeResultsToCSV(csvPath string, registry gometrics.Registry, order []string) error {
	file, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	config := util.GetClientConfig()

	// Write header
	header := []string{
		"Test", "Count", "MeanNs", "P99Ns", "OpsPerSec", "Skipped",
		"Endpoints", "TimeoutSec", "RetryCount",
		"Threads", "OpsPerThread", "LargeValueSizeKB", "KeysCount",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %v", err)
	}

	// Write test results
	for _, test := range order {
		timer := gometrics.GetOrRegisterTimer(test, registry)

		var opsPerSec float64
		skipped := "true"
		if timer.Count() > 0 {
			skipped = "false"
			opsPerSec = 1.0 / (timer.Mean() / 1e9)
		}

		row := []string{
			test,
			strconv.FormatInt(timer.Count(), 10),
			fmt.Sprintf("%.0f", timer.Mean()),
			fmt.Sprintf("%.0f", timer.Percentile(0.99)),
			fmt.Sprintf("%.0f", opsPerSec),
			skipped,
			strings.Join(config.Endpoints, ";"),
			strconv.Itoa(config.TimeoutSecond),
			strconv.Itoa(config.RetryCount),
			strconv.Itoa(perfNumThreads),
			strconv.Itoa(perfOpsPerThread),
			strconv.Itoa(perfLargeValueSizeKB),
			strconv.Itoa(perfKeySpread),
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for test %s: %v", test, err)
		}
	}

	return nil
}
