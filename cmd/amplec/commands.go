package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/amplec/utils/config"
	"github.com/amplec/utils/logging"
	"github.com/amplec/utils/persistence"
)

const (
	configFlagName  = "config"
	configFlagUsage = "Path to a YAML configuration file"

	olderThanFlagName  = "older-than-days"
	olderThanFlagUsage = "Retention window in days for the cleanup sweep"
)

// rootCmd builds the amplec command tree.
func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "amplec",
		Short: "manage stored submissions",
		Long: `Manage the flat-file submission store: store payloads, load them
back, and sweep out submissions older than the retention window.`,

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, configFlagName, "c", "", configFlagUsage)

	cmd.AddCommand(storeCmd(&configPath))
	cmd.AddCommand(loadCmd(&configPath))
	cmd.AddCommand(catCmd(&configPath))
	cmd.AddCommand(cleanupCmd(&configPath))

	return cmd
}

func storeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "store <id|-> [file]",
		Short: "store a submission payload",
		Long: `Store a submission payload, one line per payload entry, read from the
given file or from stdin. Pass "-" as the id to generate one.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, logger, _, err := openStore(*configPath)
			if err != nil {
				return err
			}
			defer logger.Close()

			id := args[0]
			if id == "-" {
				id = uuid.NewString()
			}

			payload, err := readPayload(cmd, args)
			if err != nil {
				return err
			}

			if err := store.StoreSubmission(id, payload); err != nil {
				return errors.Wrapf(err, "store submission %q", id)
			}

			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func loadCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "load <id>",
		Short: "print a submission's metadata and payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, logger, _, err := openStore(*configPath)
			if err != nil {
				return err
			}
			defer logger.Close()

			payload, entry, err := store.LoadSubmission(args[0])
			if err != nil {
				return errors.Wrapf(err, "load submission %q", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "indexed_at: %s\n", entry.IndexedAt)
			fmt.Fprintf(out, "lines: %d\n", entry.Lines)
			for _, line := range payload {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}

func catCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "cat <id>",
		Short: "print a submission's payload only",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, logger, _, err := openStore(*configPath)
			if err != nil {
				return err
			}
			defer logger.Close()

			payload, err := store.LoadOnlyPayload(args[0])
			if err != nil {
				return errors.Wrapf(err, "load submission %q", args[0])
			}

			for _, line := range payload {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

func cleanupCmd(configPath *string) *cobra.Command {
	olderThanDays := -1

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "delete submissions older than the retention window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, logger, cfg, err := openStore(*configPath)
			if err != nil {
				return err
			}
			defer logger.Close()

			days := olderThanDays
			if days < 0 {
				days = cfg.Store.RetentionDays
			}

			removed, err := store.CleanupSubmissions(days)
			if err != nil {
				return errors.Wrap(err, "cleanup submissions")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "removed %d submissions older than %d days\n", removed, days)
			return nil
		},
	}

	cmd.Flags().IntVar(&olderThanDays, olderThanFlagName, -1, olderThanFlagUsage)
	return cmd
}

// openStore wires configuration, logger and store for every subcommand.
func openStore(configPath string) (*persistence.SubmissionStore, logging.Logger, *config.RawConfig, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	loggerConfig, err := cfg.LoggerConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := logging.New(loggerConfig)
	if err != nil {
		return nil, nil, nil, err
	}

	store, err := persistence.New(cfg.Store.BaseDir, logger)
	if err != nil {
		logger.Close()
		return nil, nil, nil, err
	}

	return store, logger, cfg, nil
}

func readPayload(cmd *cobra.Command, args []string) ([]string, error) {
	var reader io.Reader = cmd.InOrStdin()
	if len(args) == 2 {
		file, err := os.Open(args[1])
		if err != nil {
			return nil, errors.Wrapf(err, "open payload file %s", args[1])
		}
		defer file.Close()
		reader = file
	}

	var payload []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		payload = append(payload, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read payload")
	}
	return payload, nil
}
