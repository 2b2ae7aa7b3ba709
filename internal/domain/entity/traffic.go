package entity

import "math"

const bytesPerGB = 1024 * 1024 * 1024

// TrafficSummary holds the outbound traffic total for a billing cycle.
type TrafficSummary struct {
	Cycle        BillingCycle `json:"billing_cycle"`
	TotalBytes   float64      `json:"total_bytes"`
	MatchedItems int          `json:"matched_items"`
	FetchedItems int          `json:"fetched_items"`
}

// GB returns the total in gigabytes, rounded to 4 decimal places.
func (t TrafficSummary) GB() float64 {
	return math.Round(t.TotalBytes/bytesPerGB*1e4) / 1e4
}
