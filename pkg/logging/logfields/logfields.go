package logfields

const (
	LogSubsys    = "subsys"
	LogComponent = "component"

	// File the file name
	File = "file"

	// PID the process id
	PID = "pid"

	// Table the capability table being built or called
	Table = "table"

	// EntryPoint the name of a resolved or unsupported entry point
	EntryPoint = "entrypoint"

	// Addr a raw entry point address
	Addr = "addr"

	// Session the id of a single table construction pass
	Session = "session"

	Scope   = "scope"
	Library = "library"

	ProcModule          = "procmodule"
	ProcModuleType      = "procmoduletype"
	ProcModulePath      = "procmodulepath"
	ProcModuleTableSize = "procmoduletablesize"
)
