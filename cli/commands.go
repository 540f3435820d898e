package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Check  CheckCmd  `cmd:"" help:"Parse a ledger file and verify that its transactions balance."`
	Format FormatCmd `cmd:"" help:"Format a ledger file to align numbers and currencies."`
}
