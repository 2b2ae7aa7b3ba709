package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diillson/alicloud-ops/internal/domain/entity"
	"github.com/diillson/alicloud-ops/internal/domain/repository"
	"github.com/diillson/alicloud-ops/internal/domain/service"
	"github.com/diillson/alicloud-ops/internal/shared/types"
	"github.com/diillson/alicloud-ops/pkg/console"
)

const (
	cycleActionAnother = iota
	cycleActionBack
)

var cycleActionLabels = []string{"Query another month", "Back to main menu"}

// BillingUseCase handles the outbound traffic and bill summary queries.
type BillingUseCase struct {
	billingRepo repository.BillingRepository
	exportRepo  repository.ExportRepository
	console     types.ConsoleInterface
	prompter    types.PrompterInterface
	cfg         *types.Config
	now         func() time.Time
}

// NewBillingUseCase creates a new billing use case.
func NewBillingUseCase(
	billingRepo repository.BillingRepository,
	exportRepo repository.ExportRepository,
	consoleImpl types.ConsoleInterface,
	prompter types.PrompterInterface,
	cfg *types.Config,
) *BillingUseCase {
	if cfg == nil {
		cfg = &types.Config{}
	}
	return &BillingUseCase{
		billingRepo: billingRepo,
		exportRepo:  exportRepo,
		console:     consoleImpl,
		prompter:    prompter,
		cfg:         cfg,
		now:         time.Now,
	}
}

// RunOutboundTraffic mostra o tráfego de saída do mês corrente e depois
// permite consultar outros meses.
func (uc *BillingUseCase) RunOutboundTraffic(ctx context.Context) error {
	return uc.runCycleLoop(ctx, func(ctx context.Context, cycle entity.BillingCycle) {
		uc.QueryOutboundTraffic(ctx, cycle)
	})
}

// RunBillSummary mostra o resumo por produto do mês corrente e depois
// permite consultar outros meses.
func (uc *BillingUseCase) RunBillSummary(ctx context.Context) error {
	return uc.runCycleLoop(ctx, func(ctx context.Context, cycle entity.BillingCycle) {
		uc.QueryBillSummary(ctx, cycle)
	})
}

func (uc *BillingUseCase) runCycleLoop(ctx context.Context, query func(context.Context, entity.BillingCycle)) error {
	query(ctx, entity.CurrentBillingCycle(uc.now()))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		action, err := uc.prompter.Select("What next?", cycleActionLabels)
		if err != nil || action == cycleActionBack {
			return nil
		}

		cycle, ok := uc.promptBillingCycle()
		if !ok {
			continue
		}
		query(ctx, cycle)
	}
}

// promptBillingCycle pede um ciclo até receber um válido. Resposta vazia cancela.
func (uc *BillingUseCase) promptBillingCycle() (entity.BillingCycle, bool) {
	for {
		input, err := uc.prompter.TextInput("Billing cycle (YYYY-MM, blank to cancel)")
		if err != nil {
			return "", false
		}

		input = strings.TrimSpace(input)
		if input == "" {
			return "", false
		}

		cycle, err := entity.ParseBillingCycle(input)
		if err != nil {
			uc.console.LogWarning("%s", err)
			continue
		}
		return cycle, true
	}
}

// FetchLineItems busca os itens pós-pagos e de assinatura do ciclo.
// Falhas são registradas e os itens obtidos até ali são mantidos.
func (uc *BillingUseCase) FetchLineItems(ctx context.Context, cycle entity.BillingCycle) []entity.BillingLineItem {
	status := uc.console.Status(fmt.Sprintf("Fetching bill items for %s...", cycle))
	defer status.Stop()

	var all []entity.BillingLineItem
	for _, subscription := range entity.SubscriptionTypes {
		status.Update(fmt.Sprintf("Fetching %s bill items for %s...", subscription, cycle))

		items, err := uc.billingRepo.ListInstanceBill(ctx, cycle, subscription)
		if err != nil {
			uc.console.LogError("Failed to fetch %s bill items (%d kept): %s", subscription, len(items), err)
		}
		all = append(all, items...)
	}
	return all
}

// QueryOutboundTraffic computes and prints the outbound traffic of a cycle.
// The second result is false when the cycle has no billing items at all.
func (uc *BillingUseCase) QueryOutboundTraffic(ctx context.Context, cycle entity.BillingCycle) (entity.TrafficSummary, bool) {
	items := uc.FetchLineItems(ctx, cycle)
	if len(items) == 0 {
		uc.console.LogWarning("No billing items found for %s", cycle)
		return entity.TrafficSummary{Cycle: cycle}, false
	}

	summary := service.NewTrafficSummary(cycle, items)

	table := uc.console.CreateTable()
	table.AddColumn("Billing Cycle")
	table.AddColumn("Outbound Traffic (GB)")
	table.AddColumn("Traffic Items")
	table.AddColumn("Items Fetched")
	table.AddRow(
		cycle.String(),
		console.BrightGreen(fmt.Sprintf("%.4f", summary.GB())),
		summary.MatchedItems,
		summary.FetchedItems,
	)
	uc.console.Print(table.Render())

	if summary.MatchedItems == 0 {
		uc.console.LogInfo("No outbound traffic items among %d billing items", summary.FetchedItems)
	}

	uc.exportReport("outbound traffic", fmt.Sprintf("traffic_%s", cycle), exporters{
		csv:  func(name, dir string) (string, error) { return uc.exportRepo.ExportTrafficToCSV(summary, name, dir) },
		json: func(name, dir string) (string, error) { return uc.exportRepo.ExportTrafficToJSON(summary, name, dir) },
		pdf:  func(name, dir string) (string, error) { return uc.exportRepo.ExportTrafficToPDF(summary, name, dir) },
	})
	return summary, true
}

// QueryBillSummary groups the cycle's billing items by product and prints them.
func (uc *BillingUseCase) QueryBillSummary(ctx context.Context, cycle entity.BillingCycle) (entity.ProductReport, bool) {
	items := uc.FetchLineItems(ctx, cycle)
	if len(items) == 0 {
		uc.console.LogWarning("No billing items found for %s", cycle)
		return entity.ProductReport{Cycle: cycle}, false
	}

	report := service.SummarizeByProduct(cycle, items)

	table := uc.console.CreateTable()
	table.AddColumn("Product Code")
	table.AddColumn("Items")
	table.AddColumn("Pretax Amount")
	for _, p := range report.Products {
		table.AddRow(p.ProductCode, p.ItemCount, fmt.Sprintf("%.2f", p.TotalAmount))
	}
	table.AddRow(
		console.BrightMagenta("TOTAL"),
		report.ItemCount,
		console.BrightGreen(fmt.Sprintf("%.2f", report.GrandTotal)),
	)

	uc.console.Println(console.BrightCyan(fmt.Sprintf("Bill summary for %s", cycle)))
	uc.console.Print(table.Render())

	uc.exportReport("bill summary", fmt.Sprintf("bill_summary_%s", cycle), exporters{
		csv:  func(name, dir string) (string, error) { return uc.exportRepo.ExportBillSummaryToCSV(report, name, dir) },
		json: func(name, dir string) (string, error) { return uc.exportRepo.ExportBillSummaryToJSON(report, name, dir) },
		pdf:  func(name, dir string) (string, error) { return uc.exportRepo.ExportBillSummaryToPDF(report, name, dir) },
	})
	return report, true
}

type exportFunc func(filename, dir string) (string, error)

type exporters struct {
	csv, json, pdf exportFunc
}

// exportReport grava o relatório em cada formato pedido, quando --report-name foi informado.
func (uc *BillingUseCase) exportReport(label, suffix string, ex exporters) {
	if uc.cfg.ReportName == "" || uc.exportRepo == nil {
		return
	}

	filename := fmt.Sprintf("%s_%s", uc.cfg.ReportName, suffix)
	for _, reportType := range uc.cfg.ReportType {
		var fn exportFunc
		switch strings.ToLower(reportType) {
		case "csv":
			fn = ex.csv
		case "json":
			fn = ex.json
		case "pdf":
			fn = ex.pdf
		default:
			uc.console.LogWarning("Unsupported report type %q, expected csv, json or pdf", reportType)
			continue
		}

		path, err := fn(filename, uc.cfg.Dir)
		if err != nil {
			uc.console.LogError("Failed to export %s to %s: %s", label, strings.ToUpper(reportType), err)
		} else {
			uc.console.LogSuccess("Successfully exported %s to %s: %s", label, strings.ToUpper(reportType), path)
		}
	}
}
