package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	EnvFile    string
	Profile    string
	Region     string
	ReportName string
	ReportType []string
	Dir        string
	Debug      bool
}
