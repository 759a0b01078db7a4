package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wrapstats-org/wrapstats/config"
	"github.com/wrapstats-org/wrapstats/helpers"
	"github.com/wrapstats-org/wrapstats/stats"
)

// ============================================================================
// WRAPSTATS CLI - check-in statistics report
// ============================================================================
// Thin caller around stats.Aggregate: read the check-in payload, run the
// engine, write the Statistics JSON. Empty input writes {} and exits 0 -
// no data is not an error.
// ============================================================================

const version = "0.1.0"

var (
	filePath   string
	configPath string
	outFile    string
	pretty     bool
)

var rootCmd = &cobra.Command{
	Use:   "wrapstats",
	Short: "wrapstats - turn check-in history into a wrapped report",
	Long: `wrapstats reads a check-in payload (bare JSON array or API envelope)
and writes the derived statistics report as JSON.

Examples:
  wrapstats --file checkins.json
  wrapstats --file - < checkins.json
  wrapstats --file checkins.json --config wrapstats.yaml --out report.json --pretty`,
	RunE:          runReport,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and exit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wrapstats %s\n", version)
	},
}

func init() {
	rootCmd.Flags().StringVar(&filePath, "file", "", "Path to check-in JSON payload, or - for stdin (required)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to YAML config file")
	rootCmd.Flags().StringVar(&outFile, "out", "", "Write report to file instead of stdout")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the report JSON")
	rootCmd.AddCommand(versionCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	if filePath == "" {
		return fmt.Errorf("--file is required")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	data, err := readPayload(filePath)
	if err != nil {
		return err
	}

	checkins, err := helpers.ParseCheckins(data)
	if err != nil {
		return err
	}
	log.Printf("parsed %d check-ins", len(checkins))

	report := stats.Aggregate(checkins, engineOptions(cfg)...)

	out, err := renderJSON(report, pretty)
	if err != nil {
		return err
	}

	if outFile == "" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.WriteFile(outFile, append(out, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	log.Printf("report written to %s", outFile)
	return nil
}

// engineOptions translates the run config into engine options.
func engineOptions(cfg *config.Config) []stats.Option {
	opts := []stats.Option{
		stats.WithHomeCountry(cfg.HomeCountry),
		stats.WithTopVenues(cfg.TopVenues),
		stats.WithTopCategories(cfg.TopCategories),
		stats.WithTopCities(cfg.TopCities),
		stats.WithTopFriends(cfg.TopFriends),
		stats.WithCoordPrecision(cfg.CoordPrecision),
	}
	if cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			log.Printf("unknown timezone %q, using local", cfg.Timezone)
		} else {
			opts = append(opts, stats.WithLocation(loc))
		}
	}
	return opts
}

func readPayload(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return data, nil
}

// renderJSON marshals the report; a nil report renders as {} - the
// canonical "no data" result.
func renderJSON(report *stats.Statistics, pretty bool) ([]byte, error) {
	if report == nil {
		return []byte("{}"), nil
	}
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
