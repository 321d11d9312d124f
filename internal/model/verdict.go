package model

// Severity grades why an apply action is blocked.
type Severity string

const (
	SeverityWarning   Severity = "warning"
	SeveritySecondary Severity = "secondary"
	SeverityDanger    Severity = "danger"
)

// ChangeVerdict tells whether a proposed staker configuration may be applied.
// Reason and Severity are only set when IsAllowed is false.
type ChangeVerdict struct {
	IsAllowed bool     `json:"isAllowed"`
	Reason    string   `json:"reason,omitempty"`
	Severity  Severity `json:"severity,omitempty"`
}

// Allowed is the verdict of an applicable configuration.
func Allowed() ChangeVerdict {
	return ChangeVerdict{IsAllowed: true}
}

// Blocked builds a verdict that forbids the apply action.
func Blocked(reason string, severity Severity) ChangeVerdict {
	return ChangeVerdict{Reason: reason, Severity: severity}
}
