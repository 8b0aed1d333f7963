// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cybrota/collisions/collision"
	"github.com/cybrota/collisions/index"
	"github.com/cybrota/collisions/report"
	"github.com/cybrota/collisions/store"
)

var errMissingInput = errors.New("missing name of the input file")

// app carries state shared by every sub-command.
type app struct {
	configPath string
	verbose    bool

	config *Config
	log    zerolog.Logger
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	config, err := LoadConfig(a.configPath)
	a.config = config
	a.log = newLogger(cmd.ErrOrStderr(), config.Log.Level, a.verbose)
	if err != nil {
		a.log.Warn().Err(err).Msg("failed to load configuration, using default settings")
	}
	return nil
}

// openStore loads the file named by args, or the configured default file.
func (a *app) openStore(args []string) (*store.Store, error) {
	path := a.config.Data.File
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, errMissingInput
	}

	s := store.New(a.config.StoreOptions(), a.log)
	stats, err := store.LoadFile(path, s, store.LoadOptions{ShowProgress: a.config.Data.ShowProgress})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("the file %s does not exist", path)
	}
	if err != nil {
		return nil, err
	}
	if stats.Added == 0 {
		a.log.Warn().Str("file", path).Msg("no valid collision records found")
	}
	return s, nil
}

func (a *app) runInteractive(cmd *cobra.Command, args []string) error {
	s, err := a.openStore(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("Indexed %d collisions.", s.Len())))
	return newPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), s).run()
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmdRun := &cobra.Command{
		Use:   "run [file]",
		Short: "Load a collisions CSV file and query it interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runInteractive,
	}

	var zip, start, end string
	var copyReport bool
	cmdReport := &cobra.Command{
		Use:   "report [file]",
		Short: "Print the report for one zip code and date range",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !index.ValidZone(zip) {
				return fmt.Errorf("%w: %q", index.ErrInvalidZone, zip)
			}
			begin, finish, ok := parseRange(start, end)
			if !ok {
				return fmt.Errorf("invalid date range %q - %q, expected %s", start, end, collision.DefaultDateFormat)
			}

			s, err := a.openStore(args)
			if err != nil {
				return err
			}
			summary, err := s.Report(zip, begin, finish)
			if err != nil {
				return err
			}
			if err := report.Write(cmd.OutOrStdout(), summary); err != nil {
				return err
			}

			if copyReport || a.config.Report.CopyToClipboard {
				if err := clipboard.WriteAll(summary.String()); err != nil {
					a.log.Warn().Err(err).Msg("failed to copy report to clipboard")
				} else {
					fmt.Fprintf(cmd.ErrOrStderr(), "Copied report for %s%s%s to clipboard.\n", Green, zip, Reset)
				}
			}
			return nil
		},
	}
	cmdReport.Flags().StringVar(&zip, "zip", "", "five digit zip code")
	cmdReport.Flags().StringVar(&start, "start", "", "first day of the range (MM/DD/YYYY)")
	cmdReport.Flags().StringVar(&end, "end", "", "last day of the range (MM/DD/YYYY)")
	cmdReport.Flags().BoolVar(&copyReport, "copy", false, "also copy the report to the clipboard")
	_ = cmdReport.MarkFlagRequired("zip")
	_ = cmdReport.MarkFlagRequired("start")
	_ = cmdReport.MarkFlagRequired("end")

	cmdDump := &cobra.Command{
		Use:   "dump [file]",
		Short: "Print the shape of the collision index",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore(args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s.Dump())
			return err
		},
	}

	cmdUsage := &cobra.Command{
		Use:   "usage",
		Short: "Print collisions usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	cmdVersion := &cobra.Command{
		Use:   "version",
		Short: "Print collisions version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	cmdSettings := &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating a default one if needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(cmd.OutOrStdout(), a.configPath)
		},
	}

	rootCmd := &cobra.Command{
		Use:               "collisions [file]",
		Version:           version,
		Short:             "Motor vehicle collision reports by zip code",
		Long:              "Loads a motor vehicle collisions CSV file and reports injuries and fatalities per zip code and date range.",
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		// Default to run command when no subcommand is provided
		RunE: a.runInteractive,
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/"+configFileName+")")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log skipped lines and cache activity")

	rootCmd.AddCommand(cmdRun, cmdReport, cmdDump, cmdUsage, cmdVersion, cmdSettings)
	return rootCmd
}

func main() {
	InitializeColors()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
