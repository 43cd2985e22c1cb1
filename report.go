package texapply

import "fmt"

// IssueLevel represents severity of a run issue.
type IssueLevel string

const (
	// IssueError indicates a per-material failure that was skipped over.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a miss or skip worth surfacing.
	IssueWarning IssueLevel = "warning"
)

// Issue represents a non-fatal condition recorded during a run.
type Issue struct {
	Level   IssueLevel `json:"level" yaml:"level"`                   // Severity level
	Code    string     `json:"code,omitempty" yaml:"code,omitempty"` // Machine-readable code
	Message string     `json:"message" yaml:"message"`               // Issue message
	Path    string     `json:"path,omitempty" yaml:"path,omitempty"` // Affected material, slot, or file
}

// Outcome classifies the overall result of a run.
type Outcome int

const (
	// OutcomeNoMatches indicates no material matched any descriptor file.
	OutcomeNoMatches Outcome = iota
	// OutcomeApplied indicates at least one texture was wired.
	OutcomeApplied
	// OutcomeAllPresent indicates every resolved texture was already wired.
	OutcomeAllPresent
	// OutcomeNothingApplied indicates materials matched but no texture was
	// found or applied.
	OutcomeNothingApplied
)

// Report summarizes one application run.
type Report struct {
	Matched int     `json:"matched" yaml:"matched"`                 // Materials matched to a descriptor file
	Applied int     `json:"applied" yaml:"applied"`                 // Textures wired into the graph
	Skipped int     `json:"skipped" yaml:"skipped"`                 // Slots skipped over an unavailable input
	Issues  []Issue `json:"issues,omitempty" yaml:"issues,omitempty"` // Non-fatal conditions encountered
}

// Outcome classifies the report.
func (r *Report) Outcome() Outcome {
	switch {
	case r.Matched == 0:
		return OutcomeNoMatches
	case r.Applied > 0:
		return OutcomeApplied
	case r.Skipped > 0:
		return OutcomeAllPresent
	default:
		return OutcomeNothingApplied
	}
}

// Summary renders a one-line human-readable result.
func (r *Report) Summary() string {
	switch r.Outcome() {
	case OutcomeApplied:
		s := fmt.Sprintf("matched %d material(s), applied %d texture(s)", r.Matched, r.Applied)
		if r.Skipped > 0 {
			s += fmt.Sprintf(", skipped %d existing texture(s)", r.Skipped)
		}
		return s
	case OutcomeAllPresent:
		return fmt.Sprintf("matched %d material(s), all textures already present", r.Matched)
	case OutcomeNothingApplied:
		return fmt.Sprintf("matched %d material(s), but no textures were found or applied", r.Matched)
	default:
		return "no materials matched any descriptor files"
	}
}

// addIssue appends a run issue to the report.
func (r *Report) addIssue(level IssueLevel, code, message, path string) {
	r.Issues = append(r.Issues, Issue{Level: level, Code: code, Message: message, Path: path})
}
