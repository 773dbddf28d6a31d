package comps

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Command completed successfully
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid comps.yaml or environment settings
	ExitParseError       = 20 // Malformed XML input
	ExitIOError          = 21 // Unreadable input, compressed input or failed write
	ExitValidationFailed = 22 // Error diagnostics in strict mode
)

// Package type names as they appear in the type attribute of <packagereq>.
const (
	PackageTypeNameConditional = "conditional"
	PackageTypeNameDefault     = "default"
	PackageTypeNameMandatory   = "mandatory"
	PackageTypeNameOptional    = "optional"
	PackageTypeNameUnknown     = "unknown"
)
