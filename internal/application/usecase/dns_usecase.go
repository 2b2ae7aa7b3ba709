package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/diillson/alicloud-ops/internal/domain/entity"
	"github.com/diillson/alicloud-ops/internal/domain/repository"
	"github.com/diillson/alicloud-ops/internal/domain/service"
	"github.com/diillson/alicloud-ops/internal/shared/types"
	"github.com/samber/lo"
)

type recordAction int

const (
	recordActionAdd recordAction = iota
	recordActionUpdate
	recordActionDelete
	recordActionBack
)

var recordActionLabels = []string{"Add record", "Update record", "Delete record", "Back to domain list"}

// DNSUseCase handles the interactive DNS record management.
type DNSUseCase struct {
	dnsRepo  repository.DNSRepository
	console  types.ConsoleInterface
	prompter types.PrompterInterface
}

// NewDNSUseCase creates a new DNS use case.
func NewDNSUseCase(
	dnsRepo repository.DNSRepository,
	consoleImpl types.ConsoleInterface,
	prompter types.PrompterInterface,
) *DNSUseCase {
	return &DNSUseCase{
		dnsRepo:  dnsRepo,
		console:  consoleImpl,
		prompter: prompter,
	}
}

// Run lets the operator pick a domain and manage its records until they go back.
func (uc *DNSUseCase) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		domain, ok := uc.selectDomain(ctx)
		if !ok {
			return nil
		}
		if err := uc.ManageDomain(ctx, domain); err != nil {
			return err
		}
	}
}

func (uc *DNSUseCase) selectDomain(ctx context.Context) (string, bool) {
	status := uc.console.Status("Fetching domains...")
	domains, err := uc.dnsRepo.ListDomains(ctx)
	status.Stop()
	if err != nil {
		uc.console.LogError("Failed to list domains: %s", err)
	}
	if len(domains) == 0 {
		uc.console.LogWarning("No domains found in this account")
		return "", false
	}

	options := lo.Map(domains, func(d entity.Domain, _ int) string {
		return fmt.Sprintf("%s (%d records)", d.Name, d.RecordCount)
	})
	options = append(options, "Back to main menu")

	idx, err := uc.prompter.Select("Select a domain", options)
	if err != nil || idx >= len(domains) {
		return "", false
	}
	return domains[idx].Name, true
}

// ManageDomain shows the records of domain and applies the chosen action.
// The record list is fetched again before every action.
func (uc *DNSUseCase) ManageDomain(ctx context.Context, domain string) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		records := uc.ListRecords(ctx, domain)

		idx, err := uc.prompter.Select(fmt.Sprintf("Manage %s", domain), recordActionLabels)
		if err != nil {
			return nil
		}

		switch recordAction(idx) {
		case recordActionAdd:
			uc.AddRecord(ctx, domain)
		case recordActionUpdate:
			uc.UpdateRecord(ctx, domain, records)
		case recordActionDelete:
			uc.DeleteRecord(ctx, domain, records)
		case recordActionBack:
			return nil
		}
	}
}

// ListRecords fetches and prints the records of domain. A failed fetch keeps
// whatever pages arrived.
func (uc *DNSUseCase) ListRecords(ctx context.Context, domain string) []entity.DNSRecord {
	status := uc.console.Status(fmt.Sprintf("Fetching records of %s...", domain))
	records, err := uc.dnsRepo.ListDomainRecords(ctx, domain)
	status.Stop()
	if err != nil {
		uc.console.LogError("Failed to list records of %s: %s", domain, err)
	}

	if len(records) == 0 {
		uc.console.LogInfo("No records found for %s", domain)
		return records
	}

	table := uc.console.CreateTable()
	table.AddColumn("Record ID")
	table.AddColumn("Host")
	table.AddColumn("Type")
	table.AddColumn("Value")
	table.AddColumn("TTL")
	table.AddColumn("Status")
	for _, r := range records {
		table.AddRow(r.RecordID, r.Host, r.Type, r.Value, r.TTL, r.Status)
	}
	uc.console.Print(table.Render())
	uc.console.LogInfo("%d records in %s", len(records), domain)

	return records
}

// AddRecord asks for host, type, value and TTL and creates the record.
func (uc *DNSUseCase) AddRecord(ctx context.Context, domain string) {
	host, ok := uc.promptRequired("Host record (www, @, ...)")
	if !ok {
		return
	}
	recordType, ok := uc.promptRequired("Record type (A, AAAA, CNAME, TXT, MX, ...)")
	if !ok {
		return
	}
	value, ok := uc.promptRequired("Record value")
	if !ok {
		return
	}
	ttlInput, err := uc.prompter.TextInput(fmt.Sprintf("TTL in seconds (blank for %d)", entity.DefaultRecordTTL))
	if err != nil {
		return
	}

	record := entity.DNSRecord{
		Host:  host,
		Type:  strings.ToUpper(recordType),
		Value: value,
		TTL:   uc.ttlOrDefault(ttlInput),
	}

	id, err := uc.dnsRepo.AddRecord(ctx, domain, record)
	if err != nil {
		uc.console.LogError("Failed to add %s record %s: %s", record.Type, record.FQDN(domain), err)
		return
	}
	uc.console.LogSuccess("Added %s record %s -> %s (ID %s)", record.Type, record.FQDN(domain), record.Value, id)
}

// UpdateRecord locates a record by host and rewrites it. Blank answers keep
// the current value.
func (uc *DNSUseCase) UpdateRecord(ctx context.Context, domain string, records []entity.DNSRecord) {
	current, ok := uc.locate(domain, records, "update")
	if !ok {
		return
	}

	updated := current
	if updated.Host, ok = uc.promptKeep("Host record", current.Host); !ok {
		return
	}
	recordType, ok := uc.promptKeep("Record type", current.Type)
	if !ok {
		return
	}
	updated.Type = strings.ToUpper(recordType)
	if updated.Value, ok = uc.promptKeep("Record value", current.Value); !ok {
		return
	}
	if updated.TTL, ok = uc.promptTTLKeep(current.TTL); !ok {
		return
	}

	if updated == current {
		uc.console.LogInfo("Nothing changed for %s", current.FQDN(domain))
		return
	}

	if err := uc.dnsRepo.UpdateRecord(ctx, updated); err != nil {
		uc.console.LogError("Failed to update record %s: %s", current.FQDN(domain), err)
		return
	}
	uc.console.LogSuccess("Updated %s record %s -> %s (TTL %d)", updated.Type, updated.FQDN(domain), updated.Value, updated.TTL)
}

// DeleteRecord locates a record by host and deletes it after confirmation.
func (uc *DNSUseCase) DeleteRecord(ctx context.Context, domain string, records []entity.DNSRecord) {
	record, ok := uc.locate(domain, records, "delete")
	if !ok {
		return
	}

	question := fmt.Sprintf("Delete %s %s %s?", record.FQDN(domain), record.Type, record.Value)
	confirmed, err := uc.prompter.Confirm(question, false)
	if err != nil || !confirmed {
		uc.console.LogInfo("Deletion cancelled")
		return
	}

	if err := uc.dnsRepo.DeleteRecord(ctx, record.RecordID); err != nil {
		uc.console.LogError("Failed to delete record %s: %s", record.FQDN(domain), err)
		return
	}
	uc.console.LogSuccess("Deleted %s record %s", record.Type, record.FQDN(domain))
}

// locate pergunta o host record e resolve para um único registro.
// Vários candidatos geram uma lista de escolha sem opção padrão.
func (uc *DNSUseCase) locate(domain string, records []entity.DNSRecord, verb string) (entity.DNSRecord, bool) {
	host, err := uc.prompter.TextInput(fmt.Sprintf("Host record to %s", verb))
	if err != nil {
		return entity.DNSRecord{}, false
	}
	host = strings.TrimSpace(host)
	if host == "" {
		uc.console.LogInfo("Cancelled")
		return entity.DNSRecord{}, false
	}

	result := service.LocateRecords(records, host)
	switch {
	case result.NotFound():
		uc.console.LogWarning("%s: no record with host %q in %s", types.ErrRecordNotFound, host, domain)
		return entity.DNSRecord{}, false
	case result.Unique():
		return result.Matches[0], true
	}

	options := lo.Map(result.Matches, func(r entity.DNSRecord, _ int) string {
		if r.Line != "" {
			return fmt.Sprintf("%s %s %s [%s] (TTL %d, ID %s)", r.Host, r.Type, r.Value, r.Line, r.TTL, r.RecordID)
		}
		return fmt.Sprintf("%s %s %s (TTL %d, ID %s)", r.Host, r.Type, r.Value, r.TTL, r.RecordID)
	})
	idx, err := uc.prompter.Select(fmt.Sprintf("%d records match %q, pick one to %s", len(options), host, verb), options)
	if err != nil {
		return entity.DNSRecord{}, false
	}
	return result.Matches[idx], true
}

func (uc *DNSUseCase) promptRequired(message string) (string, bool) {
	for {
		answer, err := uc.prompter.TextInput(message)
		if err != nil {
			return "", false
		}
		if answer = strings.TrimSpace(answer); answer != "" {
			return answer, true
		}
		uc.console.LogWarning("A value is required")
	}
}

func (uc *DNSUseCase) promptKeep(message, current string) (string, bool) {
	answer, err := uc.prompter.TextInput(fmt.Sprintf("%s [%s]", message, current))
	if err != nil {
		return "", false
	}
	if answer = strings.TrimSpace(answer); answer == "" {
		return current, true
	}
	return answer, true
}

func (uc *DNSUseCase) promptTTLKeep(current int64) (int64, bool) {
	for {
		answer, err := uc.prompter.TextInput(fmt.Sprintf("TTL [%d]", current))
		if err != nil {
			return 0, false
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			return current, true
		}
		ttl, err := strconv.ParseInt(answer, 10, 64)
		if err == nil && ttl >= 1 {
			return ttl, true
		}
		uc.console.LogWarning("TTL must be a positive whole number of seconds")
	}
}

func (uc *DNSUseCase) ttlOrDefault(input string) int64 {
	input = strings.TrimSpace(input)
	if input == "" {
		return entity.DefaultRecordTTL
	}
	ttl, err := strconv.ParseInt(input, 10, 64)
	if err != nil || ttl < 1 {
		uc.console.LogWarning("Invalid TTL %q, using %d", input, entity.DefaultRecordTTL)
		return entity.DefaultRecordTTL
	}
	return ttl
}
