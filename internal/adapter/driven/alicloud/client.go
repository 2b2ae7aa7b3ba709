package alicloud

import (
	"fmt"

	alidns "github.com/alibabacloud-go/alidns-20150109/v4/client"
	bss "github.com/alibabacloud-go/bssopenapi-20171214/v3/client"
	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	"github.com/alibabacloud-go/tea/tea"
	"github.com/diillson/alicloud-ops/internal/domain/repository"
	"github.com/diillson/alicloud-ops/internal/shared/types"
)

const (
	DefaultRegionID        = "cn-hangzhou"
	DefaultBillingEndpoint = "business.aliyuncs.com"
	DefaultDNSEndpoint     = "dns.aliyuncs.com"
	DefaultBillPageSize    = 300
	DefaultRecordPageSize  = 500

	domainPageSize = 100
)

// openAPIConfig monta a configuração do SDK a partir da configuração resolvida.
func openAPIConfig(cfg types.Config, endpoint, fallback string) *openapi.Config {
	if endpoint == "" {
		endpoint = fallback
	}
	region := cfg.RegionID
	if region == "" {
		region = DefaultRegionID
	}

	return &openapi.Config{
		AccessKeyId:     tea.String(cfg.AccessKeyID),
		AccessKeySecret: tea.String(cfg.AccessKeySecret),
		RegionId:        tea.String(region),
		Endpoint:        tea.String(endpoint),
	}
}

// NewBillingRepository cria o repositório de faturamento usando a BSS OpenAPI.
func NewBillingRepository(cfg types.Config) (repository.BillingRepository, error) {
	if cfg.AccessKeyID == "" || cfg.AccessKeySecret == "" {
		return nil, types.ErrMissingCredentials
	}

	client, err := bss.NewClient(openAPIConfig(cfg, cfg.BillingEndpoint, DefaultBillingEndpoint))
	if err != nil {
		return nil, fmt.Errorf("failed to create billing client: %w", err)
	}
	return NewBillingRepositoryWithAPI(client, cfg.BillPageSize), nil
}

// NewDNSRepository cria o repositório de DNS usando a API do Alidns.
func NewDNSRepository(cfg types.Config) (repository.DNSRepository, error) {
	if cfg.AccessKeyID == "" || cfg.AccessKeySecret == "" {
		return nil, types.ErrMissingCredentials
	}

	client, err := alidns.NewClient(openAPIConfig(cfg, cfg.DNSEndpoint, DefaultDNSEndpoint))
	if err != nil {
		return nil, fmt.Errorf("failed to create DNS client: %w", err)
	}
	return NewDNSRepositoryWithAPI(client, cfg.RecordPageSize), nil
}
