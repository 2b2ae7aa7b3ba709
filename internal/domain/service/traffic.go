package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/diillson/alicloud-ops/internal/domain/entity"
	"github.com/samber/lo"
)

// OutboundTrafficCodes are the billing item codes counted as public outbound traffic.
var OutboundTrafficCodes = []string{
	"ECS_Out_Bytes",
	"Eip_Out_Bytes",
	"Cdn_domestic_flow",
	"Cdn_overseas_flow",
	"OSS_Out_Traffic",
}

// UsageToBytes converts a usage quantity expressed in unit into bytes.
// Unknown units are taken as bytes already.
func UsageToBytes(usage float64, unit string) float64 {
	switch strings.ToUpper(strings.TrimSpace(unit)) {
	case "GB":
		return usage * 1024 * 1024 * 1024
	case "MB":
		return usage * 1024 * 1024
	case "KB":
		return usage * 1024
	default:
		return usage
	}
}

// ComputeOutboundBytes soma, em bytes, o uso dos itens cujo código está em codes.
// Valores vazios, inválidos ou não positivos são ignorados.
func ComputeOutboundBytes(items []entity.BillingLineItem, codes []string) float64 {
	total, _ := sumOutbound(items, codes)
	return total
}

// NewTrafficSummary aggregates items into the traffic summary of a cycle.
func NewTrafficSummary(cycle entity.BillingCycle, items []entity.BillingLineItem) entity.TrafficSummary {
	total, matched := sumOutbound(items, OutboundTrafficCodes)
	return entity.TrafficSummary{
		Cycle:        cycle,
		TotalBytes:   total,
		MatchedItems: matched,
		FetchedItems: len(items),
	}
}

func sumOutbound(items []entity.BillingLineItem, codes []string) (float64, int) {
	allowed := lo.SliceToMap(codes, func(code string) (string, struct{}) {
		return code, struct{}{}
	})

	var total float64
	var matched int
	for _, item := range items {
		if _, ok := allowed[item.BillingItemCode]; !ok {
			continue
		}
		usage, err := strconv.ParseFloat(strings.TrimSpace(item.Usage), 64)
		if err != nil || usage <= 0 || math.IsNaN(usage) || math.IsInf(usage, 0) {
			continue
		}
		total += UsageToBytes(usage, item.UsageUnit)
		matched++
	}
	return total, matched
}
