// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

package main

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/korrel8r/vector/internal/pkg/metrics"
	"github.com/korrel8r/vector/internal/pkg/must"
	"github.com/korrel8r/vector/internal/pkg/text"
	"github.com/korrel8r/vector/pkg/vector"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

var benchCmd = &cobra.Command{
	Use:   "bench [--count N] [--rounds N] [--metrics]",
	Short: "Measure the time to append to a new vector",
	Long: `Measure the time to append COUNT integers to a new vector, repeated ROUNDS times.
Prints statistics of the round durations and the growth of the backing store.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if *benchCount < 0 || *benchRounds <= 0 {
			must.Must(errInvalidBench)
		}
		growth := metrics.NewGrowth()
		seconds := make([]float64, *benchRounds)
		var capacity, grows int
		for r := range seconds {
			v := vector.New[int]()
			grows = 0
			v.SetGrowHook(func(oldCap, newCap int) {
				grows++
				growth.Observe(oldCap, newCap)
			})
			start := time.Now()
			for i := range *benchCount {
				v.Append(i)
			}
			seconds[r] = time.Since(start).Seconds()
			capacity = v.Cap()
		}
		mean, stddev := stat.MeanStdDev(seconds, nil)
		if math.IsNaN(stddev) { // Single round.
			stddev = 0
		}
		sort.Float64s(seconds)
		quantile := func(p float64) time.Duration {
			return duration(stat.Quantile(p, stat.Empirical, seconds, nil))
		}
		log.V(1).Info("bench", "rounds", *benchRounds, "count", *benchCount, "mean", duration(mean))
		out := cmd.OutOrStdout()
		text.Table(out,
			[]any{"rounds", *benchRounds},
			[]any{"count", *benchCount},
			[]any{"capacity", capacity},
			[]any{"grows/round", grows},
			[]any{"mean", duration(mean)},
			[]any{"stddev", duration(stddev)},
			[]any{"p50", quantile(0.5)},
			[]any{"p99", quantile(0.99)},
		)
		if *benchMetrics {
			must.Must(growth.Write(out))
		}
	},
}

var (
	benchCount, benchRounds *int
	benchMetrics            *bool
	errInvalidBench         = errors.New("--count must not be negative and --rounds must be positive")
)

func duration(seconds float64) time.Duration { return time.Duration(seconds * float64(time.Second)) }

func init() {
	benchCount = benchCmd.Flags().IntP("count", "n", 100000, "number of values to append in each round")
	benchRounds = benchCmd.Flags().IntP("rounds", "r", 10, "number of rounds")
	benchMetrics = benchCmd.Flags().Bool("metrics", false, "print growth metrics in prometheus text format")
	rootCmd.AddCommand(benchCmd)
}
