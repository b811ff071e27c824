package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"specindex/internal/config"
)

// Requirement defines an external program specindex may invoke.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements lists the external programs the configuration relies on. The
// metadata command is required only when the command reader is selected.
func Requirements(cfg *config.Config) []Requirement {
	if cfg == nil {
		return nil
	}
	var reqs []Requirement
	if cfg.Metadata.Reader == config.MetadataReaderCommand {
		reqs = append(reqs, Requirement{
			Name:        "Metadata reader",
			Command:     cfg.Metadata.Command,
			Description: "Prints spec metadata as JSON for each structured source",
		})
	}
	reqs = append(reqs, Requirement{
		Name:        "Bikeshed",
		Command:     "bikeshed",
		Description: "Produces the JSON messages consumed by `specindex report`",
		Optional:    true,
	})
	return reqs
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// MissingRequired returns the statuses of required dependencies that are not
// available.
func MissingRequired(statuses []Status) []Status {
	var missing []Status
	for _, s := range statuses {
		if !s.Available && !s.Optional {
			missing = append(missing, s)
		}
	}
	return missing
}
