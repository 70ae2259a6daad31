package flows

// Outcome is how a package manager run ended from the point of view of the CLI.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeFailed
	OutcomeDryRun
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailed:
		return "failed"
	case OutcomeDryRun:
		return "dry_run"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// inferOutcome determines the execution outcome.
//
// Outcome precedence:
//  1. Error (the package manager could not be prepared or started)
//  2. Dry run mode
//  3. Non-zero exit of the package manager
//  4. Success (default)
func inferOutcome(dryRun bool, exitCode int, err error) Outcome {
	if err != nil {
		return OutcomeError
	}

	if dryRun {
		return OutcomeDryRun
	}

	if exitCode != 0 {
		return OutcomeFailed
	}

	return OutcomeSuccess
}
