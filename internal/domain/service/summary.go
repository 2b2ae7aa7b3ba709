package service

import (
	"sort"

	"github.com/diillson/alicloud-ops/internal/domain/entity"
	"github.com/samber/lo"
)

// SummarizeByProduct groups line items by product code, sorted by code.
func SummarizeByProduct(cycle entity.BillingCycle, items []entity.BillingLineItem) entity.ProductReport {
	groups := lo.GroupBy(items, func(item entity.BillingLineItem) string {
		if item.ProductCode == "" {
			return entity.UnknownProductCode
		}
		return item.ProductCode
	})

	codes := lo.Keys(groups)
	sort.Strings(codes)

	report := entity.ProductReport{
		Cycle:     cycle,
		Products:  make([]entity.ProductSummary, 0, len(codes)),
		ItemCount: len(items),
	}
	for _, code := range codes {
		group := groups[code]
		summary := entity.ProductSummary{
			ProductCode: code,
			TotalAmount: lo.SumBy(group, func(item entity.BillingLineItem) float64 { return item.PretaxAmount }),
			ItemCount:   len(group),
		}
		report.Products = append(report.Products, summary)
		report.GrandTotal += summary.TotalAmount
	}

	return report
}
