package entity

// SubscriptionType identifies how a line item is billed.
type SubscriptionType string

const (
	SubscriptionPayAsYouGo   SubscriptionType = "PayAsYouGo"
	SubscriptionSubscription SubscriptionType = "Subscription"
)

// SubscriptionTypes lista todos os tipos que precisam ser consultados para
// uma visão completa de um ciclo de cobrança.
var SubscriptionTypes = []SubscriptionType{SubscriptionPayAsYouGo, SubscriptionSubscription}

// BillingLineItem represents one billed entry for a billing cycle.
type BillingLineItem struct {
	ProductCode      string           `json:"product_code"`
	ProductName      string           `json:"product_name,omitempty"`
	BillingItemCode  string           `json:"billing_item_code"`
	InstanceID       string           `json:"instance_id,omitempty"`
	SubscriptionType SubscriptionType `json:"subscription_type"`
	Usage            string           `json:"usage"`
	UsageUnit        string           `json:"usage_unit"`
	PretaxAmount     float64          `json:"pretax_amount"`
}
