// Command yearfrac computes year fractions between dates under the
// common day count conventions.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/iwvelando/yearfrac/internal/config"
	"github.com/iwvelando/yearfrac/internal/server"
	"github.com/iwvelando/yearfrac/internal/yearfrac"
	"github.com/iwvelando/yearfrac/pkg/constants"
	"github.com/iwvelando/yearfrac/pkg/daycount"
	"github.com/iwvelando/yearfrac/pkg/output"
	"github.com/iwvelando/yearfrac/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "yearfrac",
		Short:         "Compute year fractions under day count conventions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(newCalcCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newConventionsCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// --- Calc Command ---

func newCalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute a single year fraction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := commandLogger(cmd, config.LoggingConfig{})
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")
			convention, _ := cmd.Flags().GetString("convention")
			signed, _ := cmd.Flags().GetBool("signed")
			isda, _ := cmd.Flags().GetBool("isda")
			format, _ := cmd.Flags().GetString("output-format")
			precision, _ := cmd.Flags().GetInt("precision")

			if err := validation.ValidateOutputFormat(format); err != nil {
				return err
			}
			if err := validation.ValidatePrecision(precision); err != nil {
				return err
			}

			calc := config.Calculation{
				Name:       "calc",
				StartDate:  start,
				EndDate:    end,
				Convention: convention,
				Signed:     signed,
				ISDA:       isda,
			}
			if err := calc.Parse(config.Defaults{Convention: constants.DefaultConvention}); err != nil {
				return err
			}

			result := yearfrac.Evaluate(calc)
			logger.Debug("computed year fraction",
				zap.String("op", "main.calc"),
				zap.String("convention", result.Method()),
				zap.Float64("value", result.Value),
			)
			return output.Write(cmd.OutOrStdout(), format, []yearfrac.Result{result}, precision)
		},
	}
	cmd.Flags().String("start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().String("convention", constants.DefaultConvention, "day count convention name or basis code 0-4")
	cmd.Flags().Bool("signed", false, "return a negative fraction when start is after end")
	cmd.Flags().Bool("isda", false, "split act/act by calendar year")
	cmd.Flags().String("output-format", constants.OutputFormatPretty, "output format: pretty, csv, json")
	cmd.Flags().Int("precision", constants.DefaultPrecision, "decimal places in the output")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

// --- Run Command ---

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate every calculation in a configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configLocation, _ := cmd.Flags().GetString("config")
			outputFormatFlag, _ := cmd.Flags().GetString("output-format")

			conf, err := config.LoadConfiguration(configLocation)
			if err != nil {
				return fmt.Errorf("failed to load configuration at %s: %w", configLocation, err)
			}

			logger, err := commandLogger(cmd, conf.Logging)
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			// CLI override takes precedence over config
			outputFormat := conf.Output.Format
			if outputFormatFlag != "" {
				outputFormat = outputFormatFlag
			}
			if outputFormat == "" {
				outputFormat = constants.OutputFormatPretty
			}
			if err := validation.ValidateOutputFormat(outputFormat); err != nil {
				return err
			}

			for _, warning := range conf.ValidateConfiguration() {
				logger.Warn("Configuration warning: "+warning,
					zap.String("op", "main.run"),
				)
			}

			precision := conf.Output.Precision
			if validation.ValidatePrecision(precision) != nil {
				precision = constants.DefaultPrecision
			}

			results, err := yearfrac.GetYearFractions(logger, *conf)
			if err != nil {
				logger.Error("failed to compute year fractions",
					zap.String("op", "main.run"),
					zap.Error(err),
				)
				return err
			}
			return output.Write(cmd.OutOrStdout(), outputFormat, results, precision)
		},
	}
	cmd.Flags().String("config", constants.DefaultConfigFile, "path to configuration file")
	cmd.Flags().String("output-format", "", "type of output override: pretty, csv, json")
	return cmd
}

// --- Conventions Command ---

func newConventionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conventions",
		Short: "List the supported day count conventions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConventions(cmd.OutOrStdout())
		},
	}
}

func printConventions(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%-4s | %-8s | %s\n", "Code", "Name", "Aliases"); err != nil {
		return err
	}
	for _, c := range daycount.Conventions() {
		if _, err := fmt.Fprintf(w, "%-4d | %-8s | %s\n", c.Code(), c.String(), strings.Join(c.Aliases(), ", ")); err != nil {
			return err
		}
	}
	return nil
}

// --- Serve Command ---

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			serverConfigPath, _ := cmd.Flags().GetString("server-config")
			address, _ := cmd.Flags().GetString("address")

			cfg, err := server.LoadConfig(serverConfigPath)
			if err != nil {
				return err
			}
			if address != "" {
				cfg.Address = address
			}

			logger, err := commandLogger(cmd, cfg.Logging)
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			srv := cfg.NewHTTPServer(server.NewHandler(logger, cfg.UploadSizeBytes(), version))

			serveErr := make(chan error, 1)
			go func() {
				serveErr <- srv.ListenAndServe()
			}()

			logger.Info("server started",
				zap.String("op", "main.serve"),
				zap.String("address", cfg.Address),
				zap.Int64("maxUploadSize", cfg.UploadSizeBytes()),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			select {
			case err := <-serveErr:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("server failed: %w", err)
			case <-ctx.Done():
			}

			logger.Info("shutting down server", zap.String("op", "main.serve"))
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("server forced to shutdown",
					zap.String("op", "main.serve"),
					zap.Error(err),
				)
				return err
			}
			logger.Info("server stopped", zap.String("op", "main.serve"))
			return nil
		},
	}
	cmd.Flags().String("server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	cmd.Flags().String("address", "", "listen address override")
	return cmd
}

// --- Version Command ---

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "yearfrac %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit:  %s\n", commit)
		},
	}
}

func commandLogger(cmd *cobra.Command, loggingConfig config.LoggingConfig) (*zap.Logger, error) {
	logLevel, _ := cmd.Flags().GetString("log-level")
	logger, err := initializeLogger(loggingConfig, logLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
