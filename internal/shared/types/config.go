package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	AccessKeyID     string   `json:"access_key_id" yaml:"access_key_id" toml:"access_key_id"`
	AccessKeySecret string   `json:"access_key_secret" yaml:"access_key_secret" toml:"access_key_secret"`
	RegionID        string   `json:"region_id" yaml:"region_id" toml:"region_id"`
	BillingEndpoint string   `json:"billing_endpoint" yaml:"billing_endpoint" toml:"billing_endpoint"`
	DNSEndpoint     string   `json:"dns_endpoint" yaml:"dns_endpoint" toml:"dns_endpoint"`
	BillPageSize    int      `json:"bill_page_size" yaml:"bill_page_size" toml:"bill_page_size"`
	RecordPageSize  int      `json:"record_page_size" yaml:"record_page_size" toml:"record_page_size"`
	CredentialsFile string   `json:"credentials_file" yaml:"credentials_file" toml:"credentials_file"`
	Profile         string   `json:"profile" yaml:"profile" toml:"profile"`
	ReportName      string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType      []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir             string   `json:"dir" yaml:"dir" toml:"dir"`
}

// Credentials is an Alibaba Cloud access key pair.
type Credentials struct {
	AccessKeyID     string
	AccessKeySecret string
	RegionID        string
}
