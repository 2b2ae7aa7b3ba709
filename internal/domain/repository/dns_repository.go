package repository

import (
	"context"

	"github.com/diillson/alicloud-ops/internal/domain/entity"
)

// DNSRepository defines the interface for the DNS API.
type DNSRepository interface {
	ListDomains(ctx context.Context) ([]entity.Domain, error)
	// ListDomainRecords may return a partial list together with an error.
	ListDomainRecords(ctx context.Context, domain string) ([]entity.DNSRecord, error)

	AddRecord(ctx context.Context, domain string, record entity.DNSRecord) (string, error)
	UpdateRecord(ctx context.Context, record entity.DNSRecord) error
	DeleteRecord(ctx context.Context, recordID string) error
}
