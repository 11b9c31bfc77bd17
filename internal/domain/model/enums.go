package model

// Tool identifies which tracker a record store belongs to.
type Tool string

const (
	ToolBaseline    Tool = "baseline"
	ToolRemediation Tool = "remediation"
)

// ParseTool validates a tool name from an external input (URL segment, CLI flag).
func ParseTool(s string) (Tool, bool) {
	switch Tool(s) {
	case ToolBaseline, ToolRemediation:
		return Tool(s), true
	}
	return "", false
}

// Baseline audit statuses.
const (
	StatusNotAudited = "not-audited"
	StatusPass       = "pass"
	StatusNeedsWork  = "needs-work"
	StatusFail       = "fail"
)

// Remediation statuses.
const (
	StatusNotStarted = "not-started"
	StatusPlanned    = "planned"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

var (
	baselineStatuses    = []string{StatusNotAudited, StatusPass, StatusNeedsWork, StatusFail}
	remediationStatuses = []string{StatusNotStarted, StatusPlanned, StatusInProgress, StatusCompleted}
)

// Statuses returns the fixed status vocabulary for the given tool, in the
// order it is presented in dropdowns and stats.
func Statuses(tool Tool) []string {
	if tool == ToolRemediation {
		return remediationStatuses
	}
	return baselineStatuses
}

// ValidStatus reports whether s is a member of the tool's status enum.
// Custom statuses are never accepted.
func ValidStatus(tool Tool, s string) bool {
	for _, v := range Statuses(tool) {
		if s == v {
			return true
		}
	}
	return false
}

// DefaultStatus is the status a freshly seeded record starts in.
func DefaultStatus(tool Tool) string {
	if tool == ToolRemediation {
		return StatusNotStarted
	}
	return StatusNotAudited
}
