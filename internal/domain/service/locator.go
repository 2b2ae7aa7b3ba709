package service

import "github.com/diillson/alicloud-ops/internal/domain/entity"

// LocateRecords returns every record whose host record equals host exactly.
func LocateRecords(records []entity.DNSRecord, host string) entity.LocateResult {
	result := entity.LocateResult{Host: host}
	for _, record := range records {
		if record.Host == host {
			result.Matches = append(result.Matches, record)
		}
	}
	return result
}
