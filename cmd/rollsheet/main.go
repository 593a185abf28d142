// Package main provides the CLI entry point for rollsheet-go.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet"
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/config"
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/source"
)

var (
	configPath   string
	recordsRef   string
	templatePath string
	delegations  []string
	outputPath   string
	slots        int
	workers      int
	locale       string
	verbose      bool

	inspectSheet string
	pretty       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rollsheet",
		Short: "Compose paginated attendance sheets",
		Long: `rollsheet-go fills attendance records into xlsx sheets, one sheet per
page of records, on a built-in layout or on a template.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the attendance workbook",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
	generateCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	generateCmd.Flags().StringVarP(&recordsRef, "records", "r", "", "Record source: .csv, .yaml, .json, .xlsx, .db file, sqlite:PATH or postgres:// URL")
	generateCmd.Flags().StringVarP(&templatePath, "template", "t", "", "Template workbook (default: built-in layout)")
	generateCmd.Flags().StringSliceVarP(&delegations, "delegation", "d", nil, "Keep only records of these delegations")
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: Lista_Asistencia_Oficial_YYYYMMDD.xlsx)")
	generateCmd.Flags().IntVar(&slots, "slots", models.DefaultSlotCount, "Records per page on the built-in layout")
	generateCmd.Flags().IntVar(&workers, "workers", 0, "Concurrent page builders (default: GOMAXPROCS)")
	generateCmd.Flags().StringVar(&locale, "locale", rollsheet.DefaultLocale, "Locale of the header date")

	inspectCmd := &cobra.Command{
		Use:   "inspect [template.xlsx]",
		Short: "Print the slot layout and header anchors detected on a template",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	inspectCmd.Flags().StringVar(&inspectSheet, "sheet", "", "Template sheet (default: first sheet)")
	inspectCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(generateCmd, inspectCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).With().Timestamp().Logger()
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := newLogger()

	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Records == "" {
		return fmt.Errorf("no record source: set --records or records in the config")
	}

	src, err := source.Open(cfg.Records, cfg.RecordsSheet)
	if err != nil {
		return err
	}
	if len(cfg.Delegations) > 0 {
		src = &source.Filtered{Source: src, Delegations: cfg.Delegations}
	}

	var tpl []byte
	if cfg.Template != "" {
		if tpl, err = os.ReadFile(cfg.Template); err != nil {
			return fmt.Errorf("failed to read template: %w", err)
		}
	}

	rc, err := cfg.ReportContext(time.Now())
	if err != nil {
		return err
	}
	opts := cfg.Options(tpl)
	opts.Logger = &log

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	data, err := rollsheet.GenerateFrom(ctx, src, rc, opts)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	out := cfg.Output
	if out == "" {
		out = config.DefaultOutputName(rc.Date)
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	log.Info().Str("path", out).Int("bytes", len(data)).Msg("workbook written")
	return nil
}

// applyFlags overrides config values with the flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("records") {
		cfg.Records = recordsRef
	}
	if flags.Changed("template") {
		cfg.Template = templatePath
	}
	if flags.Changed("delegation") {
		cfg.Delegations = delegations
	}
	if flags.Changed("output") {
		cfg.Output = outputPath
	}
	if flags.Changed("slots") {
		cfg.Slots = slots
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("locale") {
		cfg.Locale = locale
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	report, err := rollsheet.Inspect(data, inspectSheet, models.DefaultNameSpan)
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	var out []byte
	if pretty {
		out, err = json.MarshalIndent(report, "", "  ")
	} else {
		out, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

