// Package main provides the CLI entry point for userseed.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/ukaji3/userseed-go/pkg/userseed"
	"github.com/ukaji3/userseed-go/pkg/userseed/config"
	"github.com/ukaji3/userseed-go/pkg/userseed/output"
)

type flags struct {
	path         string
	sheet        string
	recordsFile  string
	passwordMode string
	bcryptCost   int
	logLevel     string
	pretty       bool
}

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("failed to load configuration")
		os.Exit(1)
	}

	if err := NewRootCmd(cfg).Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command with flag defaults taken from cfg.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "userseed",
		Short: "Seed a spreadsheet-backed user store",
		Long: `userseed creates the user workbook if it is missing, writes the
name/username/password header and the sample users, and saves it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(cmd, f.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(f)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&f.path, "path", "p", cfg.Path, "Workbook file path")
	rootCmd.PersistentFlags().StringVar(&f.logLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&f.sheet, "sheet", cfg.Sheet, "Sheet to write (default: active sheet)")
	rootCmd.Flags().StringVar(&f.recordsFile, "records", cfg.RecordsFile, "YAML file with users to seed (default: sample users)")
	rootCmd.Flags().StringVar(&f.passwordMode, "password-mode", cfg.PasswordMode, "Password storage: plaintext or bcrypt")
	rootCmd.Flags().IntVar(&f.bcryptCost, "bcrypt-cost", cfg.BcryptCost, "bcrypt cost for --password-mode=bcrypt")

	rootCmd.AddCommand(newDumpCmd(f))

	return rootCmd
}

func newDumpCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the workbook contents as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := userseed.Inspect(f.path)
			if err != nil {
				return fmt.Errorf("inspection failed: %w", err)
			}

			jsonData, err := output.ToJSON(wb, f.pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			return err
		},
	}
	cmd.Flags().BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func setupLogger(cmd *cobra.Command, level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        cmd.ErrOrStderr(),
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	})
	return nil
}

func runSeed(f *flags) error {
	mode, err := userseed.ParsePasswordMode(f.passwordMode)
	if err != nil {
		return fmt.Errorf("invalid password mode %q: %w", f.passwordMode, err)
	}

	records, err := config.LoadRecords(f.recordsFile)
	if err != nil {
		return err
	}

	opts := userseed.DefaultOptions()
	opts.Path = f.path
	opts.SheetName = f.sheet
	opts.Records = records
	opts.PasswordMode = mode
	opts.BcryptCost = f.bcryptCost

	if _, err := userseed.Seed(opts); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	return nil
}
