package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/customs/internal/buildinfo"
	"github.com/aalvaropc/customs/internal/clock"
	"github.com/aalvaropc/customs/internal/domain"
	"github.com/aalvaropc/customs/internal/infra/configfile"
	"github.com/aalvaropc/customs/internal/infra/httpclient"
	"github.com/aalvaropc/customs/internal/infra/logger"
	"github.com/aalvaropc/customs/internal/infra/unipass"
	"github.com/aalvaropc/customs/internal/ports"
	"github.com/aalvaropc/customs/internal/usecase"
)

const usageText = `Usage: customs -b <H B/L> -y <year - optional>

-b, --hbl: H B/L
-y, --year: Year (optional), defaults to this year
-h, --help: Shows help
`

// Deps are the collaborators the root command wires together.
type Deps struct {
	Clock      ports.Clock
	Finder     *configfile.Finder
	Getwd      func() (string, error)
	NewGateway func(cfg domain.Config, l *slog.Logger) ports.CargoGateway
}

func defaultDeps() Deps {
	return Deps{
		Clock:      clock.RealClock{},
		Finder:     configfile.NewFinder(),
		Getwd:      os.Getwd,
		NewGateway: newUnipassGateway,
	}
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := Run(ctx, os.Args[1:], os.Stdout, os.Stderr, defaultDeps())
	stop()
	os.Exit(code)
}

// Run executes the CLI and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, deps Deps) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usageText)
		return 1
	}

	cmd := newRootCmd(deps)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	printError(stderr, err)
	if domain.IsKind(err, domain.KindUsage) {
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, usageText)
	}
	return 1
}

func newRootCmd(deps Deps) *cobra.Command {
	var hbl string
	var year string
	var format string
	var configPath string
	var debug bool

	cmd := &cobra.Command{
		Use:           "customs",
		Short:         "Track import cargo progress on UNIPASS by House B/L",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(hbl) == "" {
				return domain.UsageError("H B/L is required (use --hbl or -b)")
			}
			if !isKnownFormat(format) {
				return domain.UsageError(fmt.Sprintf("unsupported format %q (expected pretty|json)", format))
			}

			wd, err := deps.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			cfg, root, err := deps.Finder.Resolve(configPath, wd)
			if err != nil {
				return err
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:    root,
				Dir:     cfg.Log.Dir,
				Enabled: cfg.Log.Enabled,
				Debug:   debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			uc := usecase.NewTrackCargo(
				deps.NewGateway(cfg, logger.L()),
				deps.Clock,
				usecase.WithLogger(logger.L()),
			)

			res, err := uc.Execute(cmd.Context(), hbl, year)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), res, format)
		},
	}

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		fmt.Fprint(c.OutOrStdout(), usageText)
	})
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		fmt.Fprint(c.ErrOrStderr(), usageText)
		return nil
	})
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return domain.UsageError(err.Error())
	})

	cmd.Flags().StringVarP(&hbl, "hbl", "b", "", "House B/L number (required)")
	cmd.Flags().StringVarP(&year, "year", "y", "", "B/L year (optional; defaults to this year)")
	cmd.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to customs.yaml (optional; searched upward if omitted)")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable verbose logging to .customs/logs/customs.log")

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.AddCommand(versionCmd())
	return cmd
}

func noArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return domain.UsageError(fmt.Sprintf("unexpected argument %q", args[0]))
	}
	return nil
}

func newUnipassGateway(cfg domain.Config, l *slog.Logger) ports.CargoGateway {
	hc := httpclient.ConfigFrom(cfg.HTTP)

	ua := cfg.UserAgent
	if ua == "" {
		ua = buildinfo.UserAgent()
	}

	exec := httpclient.NewExecutor(
		httpclient.WithClient(httpclient.New(hc)),
		httpclient.WithTimeout(hc.Timeout),
		httpclient.WithUserAgent(ua),
		httpclient.WithLogger(l),
	)
	return unipass.New(exec,
		unipass.WithBaseURL(cfg.BaseURL),
		unipass.WithLogger(l),
	)
}
