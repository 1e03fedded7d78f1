// Package main provides the CLI entry point for goclub.
package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ukaji3/goclub-go/internal/config"
	"github.com/ukaji3/goclub-go/internal/telemetry"
	"github.com/ukaji3/goclub-go/pkg/goclub"
	"github.com/ukaji3/goclub-go/pkg/goclub/output"
	"github.com/ukaji3/goclub-go/pkg/goclub/stats"
)

var (
	outputPath string
	logLevel   string
	envFile    string

	player string
	from   string
	to     string
	format string
	pretty bool

	sqlitePath string

	cfg *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "goclub",
		Short: "Go club season statistics",
		Long: `goclub loads the club's season result spreadsheets, merges them and
prints per-player statistics as JSON or CSV.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: $LOG_LEVEL or info)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Env file to load (default: .env)")

	playersCmd := &cobra.Command{
		Use:   "players",
		Short: "List selectable players",
		Args:  cobra.NoArgs,
		RunE:  runPlayers,
	}

	gamesCmd := &cobra.Command{
		Use:   "games",
		Short: "Print the game details table, newest first",
		Args:  cobra.NoArgs,
		RunE:  runGames,
	}
	addQueryFlags(gamesCmd)
	gamesCmd.Flags().StringVar(&format, "format", "json", "Output format: json, csv")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print every statistic for a player and date range",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}
	addQueryFlags(statsCmd)
	statsCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the merged games to a SQLite database",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&sqlitePath, "sqlite", "", "SQLite database file")
	exportCmd.MarkFlagRequired("sqlite")

	rootCmd.AddCommand(playersCmd, gamesCmd, statsCmd, exportCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&player, "player", "", "Player name (default: ALL PLAYERS)")
	cmd.Flags().StringVar(&from, "from", "", "First day, YYYY-MM-DD (default: first game)")
	cmd.Flags().StringVar(&to, "to", "", "Last day, YYYY-MM-DD (default: last game)")
}

func setup(cmd *cobra.Command, args []string) error {
	if envFile != "" {
		cfg = config.Load(envFile)
	} else {
		cfg = config.Load()
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	telemetry.Init(telemetry.ParseLogLevel(level))
	return nil
}

func loadSession(ctx context.Context) (*goclub.Session, error) {
	sources, err := cfg.Sources()
	if err != nil {
		return nil, fmt.Errorf("invalid season config: %w", err)
	}

	ds, err := goclub.Load(ctx, goclub.Options{Sources: sources, HTTPTimeout: cfg.HTTPTimeout})
	if err != nil {
		return nil, fmt.Errorf("loading seasons failed: %w", err)
	}
	if n := len(ds.Warnings); n > 0 {
		telemetry.Warnf("%d fallbacks triggered while loading seasons", n)
	}
	return goclub.NewSession(ds.Games), nil
}

func queryOptions() (goclub.QueryOptions, error) {
	opts := goclub.QueryOptions{Player: player}

	var err error
	if opts.From, err = parseDay("from", from); err != nil {
		return opts, err
	}
	if opts.To, err = parseDay("to", to); err != nil {
		return opts, err
	}
	return opts, nil
}

// parseDay returns nil for an empty value so the dataset bound applies.
func parseDay(flag, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %q (expected YYYY-MM-DD)", flag, value)
	}
	return &t, nil
}

func runPlayers(cmd *cobra.Command, args []string) error {
	session, err := loadSession(cmd.Context())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	for _, name := range session.Players() {
		fmt.Fprintln(&buf, name)
	}
	return write(buf.Bytes())
}

func runGames(cmd *cobra.Command, args []string) error {
	if format != "json" && format != "csv" {
		return fmt.Errorf("invalid format: %s (must be json or csv)", format)
	}
	opts, err := queryOptions()
	if err != nil {
		return err
	}

	session, err := loadSession(cmd.Context())
	if err != nil {
		return err
	}
	ws, err := session.Query(opts)
	if err != nil {
		return err
	}
	table := stats.Table(ws)

	var buf bytes.Buffer
	if format == "csv" {
		err = output.WriteTableCSV(&buf, table)
	} else {
		err = output.WriteJSON(&buf, table, true)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return write(buf.Bytes())
}

func runStats(cmd *cobra.Command, args []string) error {
	opts, err := queryOptions()
	if err != nil {
		return err
	}

	session, err := loadSession(cmd.Context())
	if err != nil {
		return err
	}
	report, err := session.Report(opts)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := output.WriteJSON(&buf, report, pretty); err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return write(buf.Bytes())
}

func runExport(cmd *cobra.Command, args []string) error {
	session, err := loadSession(cmd.Context())
	if err != nil {
		return err
	}
	if err := output.ExportSQLite(cmd.Context(), sqlitePath, session.Games()); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	return nil
}

func write(data []byte) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err := os.Stdout.Write(data)
	return err
}
