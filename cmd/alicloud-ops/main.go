package main

import (
	"context"
	"fmt"
	"os"

	"github.com/diillson/alicloud-ops/internal/adapter/driven/alicloud"
	"github.com/diillson/alicloud-ops/internal/adapter/driven/config"
	"github.com/diillson/alicloud-ops/internal/adapter/driven/export"
	"github.com/diillson/alicloud-ops/internal/adapter/driving/cli"
	"github.com/diillson/alicloud-ops/internal/application/usecase"
	"github.com/diillson/alicloud-ops/internal/shared/types"
	"github.com/diillson/alicloud-ops/pkg/console"
	"github.com/diillson/alicloud-ops/pkg/version"
)

func main() {
	consoleImpl := console.NewConsole()
	configRepo := config.NewConfigRepository()
	exportRepo := export.NewExportRepository()

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version, consoleImpl, consoleImpl)

	// Os clientes da API dependem da configuração resolvida a partir das flags
	app.SetBootstrap(func(ctx context.Context, args *types.CLIArgs) (*cli.Services, error) {
		cfg, err := config.Resolve(configRepo, args)
		if err != nil {
			return nil, err
		}

		billingRepo, err := alicloud.NewBillingRepository(*cfg)
		if err != nil {
			return nil, err
		}
		dnsRepo, err := alicloud.NewDNSRepository(*cfg)
		if err != nil {
			return nil, err
		}

		return &cli.Services{
			Config:  cfg,
			Billing: usecase.NewBillingUseCase(billingRepo, exportRepo, consoleImpl, consoleImpl, cfg),
			DNS:     usecase.NewDNSUseCase(dnsRepo, consoleImpl, consoleImpl),
		}, nil
	})

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
