package alicloud

import (
	"context"
	"fmt"
	"strings"

	alidns "github.com/alibabacloud-go/alidns-20150109/v4/client"
	"github.com/alibabacloud-go/tea/tea"
	"github.com/diillson/alicloud-ops/internal/domain/entity"
	"github.com/diillson/alicloud-ops/pkg/pagination"
	"github.com/rs/zerolog"
)

// DNSAPI is the subset of the Alidns client we use.
type DNSAPI interface {
	DescribeDomains(request *alidns.DescribeDomainsRequest) (*alidns.DescribeDomainsResponse, error)
	DescribeDomainRecords(request *alidns.DescribeDomainRecordsRequest) (*alidns.DescribeDomainRecordsResponse, error)
	AddDomainRecord(request *alidns.AddDomainRecordRequest) (*alidns.AddDomainRecordResponse, error)
	UpdateDomainRecord(request *alidns.UpdateDomainRecordRequest) (*alidns.UpdateDomainRecordResponse, error)
	DeleteDomainRecord(request *alidns.DeleteDomainRecordRequest) (*alidns.DeleteDomainRecordResponse, error)
}

// DNSRepositoryImpl implementa o DNSRepository sobre o Alidns.
type DNSRepositoryImpl struct {
	api      DNSAPI
	pageSize int
}

// NewDNSRepositoryWithAPI creates a repository with a custom API implementation (for testing).
func NewDNSRepositoryWithAPI(api DNSAPI, pageSize int) *DNSRepositoryImpl {
	if pageSize <= 0 {
		pageSize = DefaultRecordPageSize
	}
	return &DNSRepositoryImpl{api: api, pageSize: pageSize}
}

func (r *DNSRepositoryImpl) ListDomains(ctx context.Context) ([]entity.Domain, error) {
	domains, err := pagination.FetchAllByPage(ctx, domainPageSize, func(ctx context.Context, pageNumber, pageSize int) (pagination.NumberedPage[entity.Domain], error) {
		var page pagination.NumberedPage[entity.Domain]

		response, err := r.api.DescribeDomains(&alidns.DescribeDomainsRequest{
			PageNumber: tea.Int64(int64(pageNumber)),
			PageSize:   tea.Int64(int64(pageSize)),
		})
		if err != nil {
			return page, fmt.Errorf("DescribeDomains: %w", err)
		}
		if response == nil || response.Body == nil {
			return page, nil
		}

		page.TotalCount = int(tea.Int64Value(response.Body.TotalCount))
		if response.Body.Domains != nil {
			for _, d := range response.Body.Domains.Domain {
				if d == nil {
					continue
				}
				page.Items = append(page.Items, entity.Domain{
					Name:        tea.StringValue(d.DomainName),
					RecordCount: tea.Int64Value(d.RecordCount),
				})
			}
		}
		zerolog.Ctx(ctx).Debug().Int("page", pageNumber).Int("domains", len(page.Items)).Int("total", page.TotalCount).Msg("fetched domain page")
		return page, nil
	})
	if err != nil {
		return domains, fmt.Errorf("failed to list domains: %w", err)
	}
	return domains, nil
}

func (r *DNSRepositoryImpl) ListDomainRecords(ctx context.Context, domain string) ([]entity.DNSRecord, error) {
	records, err := pagination.FetchAllByPage(ctx, r.pageSize, func(ctx context.Context, pageNumber, pageSize int) (pagination.NumberedPage[entity.DNSRecord], error) {
		var page pagination.NumberedPage[entity.DNSRecord]

		response, err := r.api.DescribeDomainRecords(&alidns.DescribeDomainRecordsRequest{
			DomainName: tea.String(domain),
			PageNumber: tea.Int64(int64(pageNumber)),
			PageSize:   tea.Int64(int64(pageSize)),
		})
		if err != nil {
			return page, fmt.Errorf("DescribeDomainRecords: %w", err)
		}
		if response == nil || response.Body == nil {
			return page, nil
		}

		page.TotalCount = int(tea.Int64Value(response.Body.TotalCount))
		if response.Body.DomainRecords != nil {
			for _, rec := range response.Body.DomainRecords.Record {
				if rec == nil {
					continue
				}
				page.Items = append(page.Items, entity.DNSRecord{
					RecordID: tea.StringValue(rec.RecordId),
					Host:     tea.StringValue(rec.RR),
					Type:     tea.StringValue(rec.Type),
					Value:    tea.StringValue(rec.Value),
					TTL:      tea.Int64Value(rec.TTL),
					Status:   tea.StringValue(rec.Status),
					Line:     tea.StringValue(rec.Line),
				})
			}
		}
		zerolog.Ctx(ctx).Debug().Str("domain", domain).Int("page", pageNumber).Int("records", len(page.Items)).Int("total", page.TotalCount).Msg("fetched record page")
		return page, nil
	})
	if err != nil {
		return records, fmt.Errorf("failed to list records of %s: %w", domain, err)
	}
	return records, nil
}

func (r *DNSRepositoryImpl) AddRecord(ctx context.Context, domain string, record entity.DNSRecord) (string, error) {
	ttl := record.TTL
	if ttl < 1 {
		ttl = entity.DefaultRecordTTL
	}

	request := &alidns.AddDomainRecordRequest{
		DomainName: tea.String(domain),
		RR:         tea.String(record.Host),
		Type:       tea.String(strings.ToUpper(record.Type)),
		Value:      tea.String(record.Value),
		TTL:        tea.Int64(ttl),
	}
	if record.Line != "" {
		request.Line = tea.String(record.Line)
	}

	response, err := r.api.AddDomainRecord(request)
	if err != nil {
		return "", fmt.Errorf("AddDomainRecord: %w", err)
	}

	var recordID string
	if response != nil && response.Body != nil {
		recordID = tea.StringValue(response.Body.RecordId)
	}
	zerolog.Ctx(ctx).Debug().Str("domain", domain).Str("rr", record.Host).Str("record_id", recordID).Msg("record added")
	return recordID, nil
}

func (r *DNSRepositoryImpl) UpdateRecord(ctx context.Context, record entity.DNSRecord) error {
	if record.RecordID == "" {
		return fmt.Errorf("UpdateDomainRecord: empty record id")
	}

	request := &alidns.UpdateDomainRecordRequest{
		RecordId: tea.String(record.RecordID),
		RR:       tea.String(record.Host),
		Type:     tea.String(strings.ToUpper(record.Type)),
		Value:    tea.String(record.Value),
		TTL:      tea.Int64(record.TTL),
	}
	// Without Line the API resets the record to the "default" line.
	if record.Line != "" {
		request.Line = tea.String(record.Line)
	}

	_, err := r.api.UpdateDomainRecord(request)
	if err != nil {
		return fmt.Errorf("UpdateDomainRecord: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Str("record_id", record.RecordID).Msg("record updated")
	return nil
}

func (r *DNSRepositoryImpl) DeleteRecord(ctx context.Context, recordID string) error {
	if recordID == "" {
		return fmt.Errorf("DeleteDomainRecord: empty record id")
	}

	_, err := r.api.DeleteDomainRecord(&alidns.DeleteDomainRecordRequest{
		RecordId: tea.String(recordID),
	})
	if err != nil {
		return fmt.Errorf("DeleteDomainRecord: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Str("record_id", recordID).Msg("record deleted")
	return nil
}
