package usecase

import (
	"context"
	"errors"

	"github.com/diillson/alicloud-ops/internal/domain/entity"
)

type billCall struct {
	Cycle        entity.BillingCycle
	Subscription entity.SubscriptionType
}

type fakeBillingRepo struct {
	items map[entity.SubscriptionType][]entity.BillingLineItem
	errs  map[entity.SubscriptionType]error
	calls []billCall
}

func (f *fakeBillingRepo) ListInstanceBill(_ context.Context, cycle entity.BillingCycle, subscription entity.SubscriptionType) ([]entity.BillingLineItem, error) {
	f.calls = append(f.calls, billCall{Cycle: cycle, Subscription: subscription})
	return f.items[subscription], f.errs[subscription]
}

type fakeExportRepo struct {
	exported []string
	fail     bool
}

func (f *fakeExportRepo) record(kind, filename, dir string) (string, error) {
	if f.fail {
		return "", errors.New("disk full")
	}
	path := dir + "/" + filename + "." + kind
	f.exported = append(f.exported, path)
	return path, nil
}

func (f *fakeExportRepo) ExportBillSummaryToCSV(_ entity.ProductReport, filename, dir string) (string, error) {
	return f.record("csv", filename, dir)
}

func (f *fakeExportRepo) ExportBillSummaryToJSON(_ entity.ProductReport, filename, dir string) (string, error) {
	return f.record("json", filename, dir)
}

func (f *fakeExportRepo) ExportBillSummaryToPDF(_ entity.ProductReport, filename, dir string) (string, error) {
	return f.record("pdf", filename, dir)
}

func (f *fakeExportRepo) ExportTrafficToCSV(_ entity.TrafficSummary, filename, dir string) (string, error) {
	return f.record("csv", filename, dir)
}

func (f *fakeExportRepo) ExportTrafficToJSON(_ entity.TrafficSummary, filename, dir string) (string, error) {
	return f.record("json", filename, dir)
}

func (f *fakeExportRepo) ExportTrafficToPDF(_ entity.TrafficSummary, filename, dir string) (string, error) {
	return f.record("pdf", filename, dir)
}

type fakeDNSRepo struct {
	domains    []entity.Domain
	records    map[string][]entity.DNSRecord
	recordsErr error

	listCalls int
	added     []entity.DNSRecord
	updated   []entity.DNSRecord
	deleted   []string
	mutateErr error
}

func (f *fakeDNSRepo) ListDomains(context.Context) ([]entity.Domain, error) {
	return f.domains, nil
}

func (f *fakeDNSRepo) ListDomainRecords(_ context.Context, domain string) ([]entity.DNSRecord, error) {
	f.listCalls++
	return f.records[domain], f.recordsErr
}

func (f *fakeDNSRepo) AddRecord(_ context.Context, _ string, record entity.DNSRecord) (string, error) {
	if f.mutateErr != nil {
		return "", f.mutateErr
	}
	f.added = append(f.added, record)
	return "new-id", nil
}

func (f *fakeDNSRepo) UpdateRecord(_ context.Context, record entity.DNSRecord) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.updated = append(f.updated, record)
	return nil
}

func (f *fakeDNSRepo) DeleteRecord(_ context.Context, recordID string) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.deleted = append(f.deleted, recordID)
	return nil
}
