package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/diillson/alicloud-ops/internal/domain/entity"
	"github.com/diillson/alicloud-ops/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDomain = "example.com"

func sampleRecords() []entity.DNSRecord {
	return []entity.DNSRecord{
		{RecordID: "1", Host: "www", Type: "A", Value: "1.1.1.1", TTL: 600},
		{RecordID: "2", Host: "api", Type: "A", Value: "2.2.2.2", TTL: 600},
		{RecordID: "3", Host: "api", Type: "AAAA", Value: "::2", TTL: 300},
		{RecordID: "4", Host: "WWW", Type: "CNAME", Value: "edge.example.net", TTL: 600},
	}
}

func newDNSUseCase(repo *fakeDNSRepo, prompter *testutil.Prompter) (*DNSUseCase, *testutil.Console) {
	con := &testutil.Console{}
	return NewDNSUseCase(repo, con, prompter), con
}

func TestDeleteRecord_ConfirmNoIssuesNoDelete(t *testing.T) {
	repo := &fakeDNSRepo{}
	prompter := &testutil.Prompter{Texts: []string{"www"}, Confirms: []bool{false}}
	uc, con := newDNSUseCase(repo, prompter)

	uc.DeleteRecord(context.Background(), testDomain, sampleRecords())

	assert.Empty(t, repo.deleted)
	assert.Empty(t, prompter.SelectCalls)
	require.Len(t, prompter.ConfirmCalls, 1)
	assert.Equal(t, "Delete www.example.com A 1.1.1.1?", prompter.ConfirmCalls[0])
	assert.Equal(t, []string{"Deletion cancelled"}, con.Logged("info"))
}

func TestDeleteRecord_ConfirmYes(t *testing.T) {
	repo := &fakeDNSRepo{}
	prompter := &testutil.Prompter{Texts: []string{"www"}, Confirms: []bool{true}}
	uc, con := newDNSUseCase(repo, prompter)

	uc.DeleteRecord(context.Background(), testDomain, sampleRecords())

	assert.Equal(t, []string{"1"}, repo.deleted)
	assert.Len(t, con.Logged("success"), 1)
}

func TestDeleteRecord_AmbiguousListsOnlyCandidates(t *testing.T) {
	repo := &fakeDNSRepo{}
	prompter := &testutil.Prompter{Texts: []string{"api"}, Selects: []int{1}, Confirms: []bool{true}}
	uc, _ := newDNSUseCase(repo, prompter)

	uc.DeleteRecord(context.Background(), testDomain, sampleRecords())

	require.Len(t, prompter.SelectCalls, 1)
	assert.Equal(t, []string{
		"api A 2.2.2.2 (TTL 600, ID 2)",
		"api AAAA ::2 (TTL 300, ID 3)",
	}, prompter.SelectCalls[0].Options)
	assert.Equal(t, []string{"3"}, repo.deleted)
}

func TestUpdateRecord_AmbiguousShowsLineAndKeepsIt(t *testing.T) {
	records := []entity.DNSRecord{
		{RecordID: "7", Host: "cdn", Type: "A", Value: "3.3.3.3", TTL: 600, Line: "default"},
		{RecordID: "8", Host: "cdn", Type: "A", Value: "4.4.4.4", TTL: 600, Line: "telecom"},
	}
	repo := &fakeDNSRepo{}
	prompter := &testutil.Prompter{Texts: []string{"cdn", "", "", "5.5.5.5", ""}, Selects: []int{1}}
	uc, _ := newDNSUseCase(repo, prompter)

	uc.UpdateRecord(context.Background(), testDomain, records)

	require.Len(t, prompter.SelectCalls, 1)
	assert.Equal(t, []string{
		"cdn A 3.3.3.3 [default] (TTL 600, ID 7)",
		"cdn A 4.4.4.4 [telecom] (TTL 600, ID 8)",
	}, prompter.SelectCalls[0].Options)
	require.Len(t, repo.updated, 1)
	assert.Equal(t, "telecom", repo.updated[0].Line)
	assert.Equal(t, "5.5.5.5", repo.updated[0].Value)
}

func TestDeleteRecord_NotFound(t *testing.T) {
	repo := &fakeDNSRepo{}
	prompter := &testutil.Prompter{Texts: []string{"mail"}}
	uc, con := newDNSUseCase(repo, prompter)

	uc.DeleteRecord(context.Background(), testDomain, sampleRecords())

	assert.Empty(t, repo.deleted)
	assert.Empty(t, prompter.ConfirmCalls)
	require.Len(t, con.Logged("warning"), 1)
	assert.Contains(t, con.Logged("warning")[0], `"mail"`)
}

func TestUpdateRecord_BlankKeepsCurrentValues(t *testing.T) {
	repo := &fakeDNSRepo{}
	prompter := &testutil.Prompter{Texts: []string{"WWW", "", "", "edge2.example.net", "abc", "0", "120"}}
	uc, _ := newDNSUseCase(repo, prompter)

	uc.UpdateRecord(context.Background(), testDomain, sampleRecords())

	require.Len(t, repo.updated, 1)
	assert.Equal(t, entity.DNSRecord{RecordID: "4", Host: "WWW", Type: "CNAME", Value: "edge2.example.net", TTL: 120}, repo.updated[0])
}

func TestUpdateRecord_TypeUppercased(t *testing.T) {
	repo := &fakeDNSRepo{}
	prompter := &testutil.Prompter{Texts: []string{"www", "", "cname", "edge.example.net", ""}}
	uc, _ := newDNSUseCase(repo, prompter)

	uc.UpdateRecord(context.Background(), testDomain, sampleRecords())

	require.Len(t, repo.updated, 1)
	assert.Equal(t, "CNAME", repo.updated[0].Type)
	assert.Equal(t, int64(600), repo.updated[0].TTL)
}

func TestUpdateRecord_NothingChanged(t *testing.T) {
	repo := &fakeDNSRepo{}
	prompter := &testutil.Prompter{Texts: []string{"www", "", "", "", ""}}
	uc, con := newDNSUseCase(repo, prompter)

	uc.UpdateRecord(context.Background(), testDomain, sampleRecords())

	assert.Empty(t, repo.updated)
	assert.Equal(t, []string{"Nothing changed for www.example.com"}, con.Logged("info"))
}

func TestAddRecord(t *testing.T) {
	tests := []struct {
		name    string
		texts   []string
		wantTTL int64
	}{
		{"explicit ttl", []string{"blog", "cname", "host.example.net", "300"}, 300},
		{"blank ttl", []string{"blog", "cname", "host.example.net", ""}, entity.DefaultRecordTTL},
		{"invalid ttl", []string{"blog", "cname", "host.example.net", "ten"}, entity.DefaultRecordTTL},
		{"required re-prompt", []string{"", "blog", "cname", " ", "host.example.net", "-5"}, entity.DefaultRecordTTL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeDNSRepo{}
			uc, con := newDNSUseCase(repo, &testutil.Prompter{Texts: tt.texts})

			uc.AddRecord(context.Background(), testDomain)

			require.Len(t, repo.added, 1)
			assert.Equal(t, entity.DNSRecord{Host: "blog", Type: "CNAME", Value: "host.example.net", TTL: tt.wantTTL}, repo.added[0])
			assert.Len(t, con.Logged("success"), 1)
		})
	}
}

func TestAddRecord_Failure(t *testing.T) {
	repo := &fakeDNSRepo{mutateErr: errors.New("DomainRecordDuplicate")}
	uc, con := newDNSUseCase(repo, &testutil.Prompter{Texts: []string{"www", "A", "1.1.1.1", ""}})

	uc.AddRecord(context.Background(), testDomain)

	require.Len(t, con.Logged("error"), 1)
	assert.Contains(t, con.Logged("error")[0], "DomainRecordDuplicate")
}

func TestManageDomain_RefetchesBeforeEachAction(t *testing.T) {
	repo := &fakeDNSRepo{records: map[string][]entity.DNSRecord{testDomain: sampleRecords()}}
	prompter := &testutil.Prompter{
		Selects:  []int{int(recordActionDelete), int(recordActionDelete), int(recordActionBack)},
		Texts:    []string{"www", "mail"},
		Confirms: []bool{true},
	}
	uc, con := newDNSUseCase(repo, prompter)

	require.NoError(t, uc.ManageDomain(context.Background(), testDomain))
	assert.Equal(t, 3, repo.listCalls)
	assert.Equal(t, []string{"1"}, repo.deleted)
	assert.Len(t, con.Tables, 3)
}

func TestListRecords_PartialResult(t *testing.T) {
	repo := &fakeDNSRepo{
		records:    map[string][]entity.DNSRecord{testDomain: sampleRecords()[:2]},
		recordsErr: errors.New("page 2: timeout"),
	}
	uc, con := newDNSUseCase(repo, &testutil.Prompter{})

	records := uc.ListRecords(context.Background(), testDomain)
	assert.Len(t, records, 2)
	assert.Len(t, con.Logged("error"), 1)
	require.Len(t, con.Tables, 1)
	assert.Len(t, con.Tables[0].Rows, 2)
}

func TestRun_DomainSelectionAndBack(t *testing.T) {
	repo := &fakeDNSRepo{
		domains: []entity.Domain{{Name: testDomain, RecordCount: 4}, {Name: "example.org"}},
		records: map[string][]entity.DNSRecord{testDomain: sampleRecords()},
	}
	prompter := &testutil.Prompter{Selects: []int{0, int(recordActionBack), 2}}
	uc, _ := newDNSUseCase(repo, prompter)

	require.NoError(t, uc.Run(context.Background()))
	require.Len(t, prompter.SelectCalls, 3)
	assert.Equal(t, []string{"example.com (4 records)", "example.org (0 records)", "Back to main menu"}, prompter.SelectCalls[0].Options)
	assert.Equal(t, "Manage example.com", prompter.SelectCalls[1].Message)
	assert.Equal(t, 1, repo.listCalls)
}

func TestRun_NoDomains(t *testing.T) {
	prompter := &testutil.Prompter{}
	uc, con := newDNSUseCase(&fakeDNSRepo{}, prompter)

	require.NoError(t, uc.Run(context.Background()))
	assert.Empty(t, prompter.SelectCalls)
	assert.Len(t, con.Logged("warning"), 1)
}
