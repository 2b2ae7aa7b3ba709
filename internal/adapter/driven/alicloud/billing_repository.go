package alicloud

import (
	"context"
	"fmt"
	"strconv"

	bss "github.com/alibabacloud-go/bssopenapi-20171214/v3/client"
	"github.com/alibabacloud-go/tea/tea"
	"github.com/diillson/alicloud-ops/internal/domain/entity"
	"github.com/diillson/alicloud-ops/pkg/pagination"
	"github.com/rs/zerolog"
)

// BssAPI is the subset of the BSS OpenAPI client we use.
type BssAPI interface {
	DescribeInstanceBill(request *bss.DescribeInstanceBillRequest) (*bss.DescribeInstanceBillResponse, error)
}

// BillingRepositoryImpl implementa o BillingRepository sobre a BSS OpenAPI.
type BillingRepositoryImpl struct {
	api      BssAPI
	pageSize int
}

// NewBillingRepositoryWithAPI creates a repository with a custom API implementation (for testing).
func NewBillingRepositoryWithAPI(api BssAPI, pageSize int) *BillingRepositoryImpl {
	if pageSize <= 0 {
		pageSize = DefaultBillPageSize
	}
	return &BillingRepositoryImpl{api: api, pageSize: pageSize}
}

func (r *BillingRepositoryImpl) ListInstanceBill(
	ctx context.Context,
	cycle entity.BillingCycle,
	subscription entity.SubscriptionType,
) ([]entity.BillingLineItem, error) {
	logger := zerolog.Ctx(ctx).With().
		Str("billing_cycle", cycle.String()).
		Str("subscription_type", string(subscription)).
		Logger()

	items, err := pagination.FetchAllByToken(ctx, func(ctx context.Context, token string) (pagination.TokenPage[entity.BillingLineItem], error) {
		request := &bss.DescribeInstanceBillRequest{
			BillingCycle:     tea.String(cycle.String()),
			SubscriptionType: tea.String(string(subscription)),
			IsBillingItem:    tea.Bool(true),
			MaxResults:       tea.Int32(int32(r.pageSize)),
		}
		if token != "" {
			request.NextToken = tea.String(token)
		}

		response, err := r.api.DescribeInstanceBill(request)
		if err != nil {
			return pagination.TokenPage[entity.BillingLineItem]{}, fmt.Errorf("DescribeInstanceBill: %w", err)
		}

		page, err := decodeInstanceBill(response, subscription)
		if err != nil {
			return page, err
		}
		logger.Debug().Int("items", len(page.Items)).Bool("has_next", page.NextToken != "").Msg("fetched instance bill page")
		return page, nil
	})
	if err != nil {
		logger.Debug().Err(err).Int("items", len(items)).Msg("instance bill fetch stopped early")
		return items, fmt.Errorf("failed to list %s bill for %s: %w", subscription, cycle, err)
	}
	return items, nil
}

// decodeInstanceBill converte a resposta do SDK em entidades tipadas.
func decodeInstanceBill(response *bss.DescribeInstanceBillResponse, subscription entity.SubscriptionType) (pagination.TokenPage[entity.BillingLineItem], error) {
	var page pagination.TokenPage[entity.BillingLineItem]
	if response == nil || response.Body == nil {
		return page, nil
	}

	body := response.Body
	if body.Success != nil && !tea.BoolValue(body.Success) {
		return page, fmt.Errorf("DescribeInstanceBill: %s: %s", tea.StringValue(body.Code), tea.StringValue(body.Message))
	}
	if body.Data == nil {
		return page, nil
	}

	page.NextToken = tea.StringValue(body.Data.NextToken)
	page.Items = make([]entity.BillingLineItem, 0, len(body.Data.Items))
	for _, item := range body.Data.Items {
		if item == nil {
			continue
		}
		page.Items = append(page.Items, entity.BillingLineItem{
			ProductCode:      tea.StringValue(item.ProductCode),
			ProductName:      tea.StringValue(item.ProductName),
			BillingItemCode:  tea.StringValue(item.BillingItemCode),
			InstanceID:       tea.StringValue(item.InstanceID),
			SubscriptionType: subscription,
			Usage:            tea.StringValue(item.Usage),
			UsageUnit:        tea.StringValue(item.UsageUnit),
			PretaxAmount:     amountToFloat64(item.PretaxAmount),
		})
	}
	return page, nil
}

// amountToFloat64 widens the SDK's float32 amount without carrying float32
// noise into the sums (0.1 stays 0.1 instead of 0.10000000149).
func amountToFloat64(amount *float32) float64 {
	if amount == nil {
		return 0
	}
	v, err := strconv.ParseFloat(strconv.FormatFloat(float64(*amount), 'f', -1, 32), 64)
	if err != nil {
		return float64(*amount)
	}
	return v
}
