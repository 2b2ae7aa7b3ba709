package entity

// UnknownProductCode is used for line items that carry no product code.
const UnknownProductCode = "Unknown"

// ProductSummary represents the accumulated spend for a single product code.
type ProductSummary struct {
	ProductCode string  `json:"product_code"`
	TotalAmount float64 `json:"total_amount"`
	ItemCount   int     `json:"item_count"`
}

// ProductReport é o relatório de consumo de um ciclo, agrupado por produto.
type ProductReport struct {
	Cycle      BillingCycle     `json:"billing_cycle"`
	Products   []ProductSummary `json:"products"`
	GrandTotal float64          `json:"grand_total"`
	ItemCount  int              `json:"item_count"`
}
