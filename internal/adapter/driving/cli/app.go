package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diillson/alicloud-ops/internal/shared/types"
	"github.com/diillson/alicloud-ops/pkg/version"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// BillingRunner runs the billing sub-menus.
type BillingRunner interface {
	RunOutboundTraffic(ctx context.Context) error
	RunBillSummary(ctx context.Context) error
}

// DNSRunner runs the DNS management sub-menu.
type DNSRunner interface {
	Run(ctx context.Context) error
}

// Services são os casos de uso acionados pelo menu principal.
type Services struct {
	Config  *types.Config
	Billing BillingRunner
	DNS     DNSRunner
}

// Bootstrap resolves the configuration for a run and builds the services.
type Bootstrap func(ctx context.Context, args *types.CLIArgs) (*Services, error)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd   *cobra.Command
	bootstrap Bootstrap
	console   types.ConsoleInterface
	prompter  types.PrompterInterface
	version   string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, consoleImpl types.ConsoleInterface, prompter types.PrompterInterface) *CLIApp {
	app := &CLIApp{
		version:  versionStr,
		console:  consoleImpl,
		prompter: prompter,
	}

	rootCmd := &cobra.Command{
		Use:           "alicloud-ops",
		Short:         "Interactive Alibaba Cloud billing and DNS console",
		Version:       version.FormatVersion(),
		RunE:          app.runCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{printf "alicloud-ops version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().String("env-file", ".env", "Path to a .env file with ALIBABA_CLOUD_* variables (ignored if missing)")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "Profile in ~/.alibabacloud/credentials (default \"default\")")
	rootCmd.PersistentFlags().StringP("region", "r", "", "Region ID used by the API clients (default \"cn-hangzhou\")")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Export every result under this base file name (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"csv"}, "Report types to export: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().Bool("debug", false, "Write debug logs of every API call to stderr")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetBootstrap sets the function that wires the services after flags are parsed.
func (app *CLIApp) SetBootstrap(bootstrap Bootstrap) {
	app.bootstrap = bootstrap
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	configFile, _ := flags.GetString("config-file")
	envFile, _ := flags.GetString("env-file")
	profile, _ := flags.GetString("profile")
	region, _ := flags.GetString("region")
	reportName, _ := flags.GetString("report-name")
	dir, _ := flags.GetString("dir")
	debug, _ := flags.GetBool("debug")

	// Only an explicit --report-type overrides the config file.
	var reportType []string
	if flags.Changed("report-type") {
		var err error
		if reportType, err = flags.GetStringSlice("report-type"); err != nil {
			return nil, err
		}
	}

	return &types.CLIArgs{
		ConfigFile: configFile,
		EnvFile:    envFile,
		Profile:    profile,
		Region:     region,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
		Debug:      debug,
	}, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner()

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger(cliArgs.Debug, os.Stderr)
	ctx = logger.WithContext(ctx)

	// Verifica a versão mais recente em paralelo; o aviso sai no fim.
	updates := make(chan string, 1)
	go func() {
		if latest, ok := version.LatestRelease(ctx, app.version); ok {
			updates <- latest
		}
	}()

	if app.bootstrap == nil {
		return errors.New("no services configured")
	}
	services, err := app.bootstrap(ctx, cliArgs)
	if err != nil {
		return err
	}
	if services.Config != nil {
		logger.Debug().
			Str("profile", services.Config.Profile).
			Str("region", services.Config.RegionID).
			Strs("report_type", services.Config.ReportType).
			Msg("configuration resolved")
	}

	err = app.runMenu(ctx, services)

	select {
	case latest := <-updates:
		app.console.LogWarning("A new version of alicloud-ops is available: %s", latest)
		app.console.LogInfo("Please update using: go install github.com/diillson/alicloud-ops/cmd/alicloud-ops@latest")
	default:
	}
	return err
}

// newLogger returns a disabled logger unless debug is set.
func newLogger(debug bool, w io.Writer) zerolog.Logger {
	if !debug {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
}
