package entity

import "fmt"

// DefaultRecordTTL is applied to new records when no valid TTL is given.
const DefaultRecordTTL = 600

// Domain is a DNS zone managed by the account.
type Domain struct {
	Name        string `json:"domain_name"`
	RecordCount int64  `json:"record_count"`
}

// DNSRecord represents one DNS resource record of a domain.
type DNSRecord struct {
	RecordID string `json:"record_id"`
	Host     string `json:"rr"`
	Type     string `json:"type"`
	Value    string `json:"value"`
	TTL      int64  `json:"ttl"`
	Status   string `json:"status,omitempty"`
	Line     string `json:"line,omitempty"`
}

// FQDN junta o host record com o domínio. "@" representa o próprio domínio.
func (r DNSRecord) FQDN(domain string) string {
	if r.Host == "" || r.Host == "@" {
		return domain
	}
	return fmt.Sprintf("%s.%s", r.Host, domain)
}

// LocateResult holds the records whose host record matched a lookup.
type LocateResult struct {
	Host    string
	Matches []DNSRecord
}

func (l LocateResult) NotFound() bool  { return len(l.Matches) == 0 }
func (l LocateResult) Unique() bool    { return len(l.Matches) == 1 }
func (l LocateResult) Ambiguous() bool { return len(l.Matches) > 1 }
