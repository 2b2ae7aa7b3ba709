package repository

import (
	"context"

	"github.com/diillson/alicloud-ops/internal/domain/entity"
)

// BillingRepository defines the interface for the billing API.
type BillingRepository interface {
	// ListInstanceBill returns every line item of a cycle for one subscription type.
	// On failure it returns the items fetched before the error, along with the error.
	ListInstanceBill(ctx context.Context, cycle entity.BillingCycle, subscription entity.SubscriptionType) ([]entity.BillingLineItem, error)
}
