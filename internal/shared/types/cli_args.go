package types

// CLIArgs represents the command-line arguments.
// Profile fields are pointers so that unset flags do not clobber values
// loaded from a configuration file (zero is a meaningful "disabled" value).
type CLIArgs struct {
	ConfigFile string

	Transactions *int
	InputTokens  *int
	OutputTokens *int
	InterAgent   *int
	RAGQueries   *int
	DBQueries    *int
	ToolCalls    *int
	MemoryOps    *int
	Reflection   *bool
	Tier         string

	Discover   bool
	History    int
	Scenarios  []float64
	ReportName string
	ReportType []string
	Dir        string
	NoSave     bool
}
