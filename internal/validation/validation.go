package validation

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"

	"github.com/julianstephens/wellfit/internal/models"
)

// IssueType represents the kind of problem found in user input
type IssueType string

const (
	IssueGoalNotPositive IssueType = "goal_not_positive"
	IssueUnknownHabit    IssueType = "unknown_habit"
	IssueEmptyEmail      IssueType = "empty_email"
	IssueInvalidEmail    IssueType = "invalid_email"
	IssueEmptyPassword   IssueType = "empty_password"
)

// Issue is one problem with a field of user input
type Issue struct {
	Type        IssueType
	Field       string
	Description string
}

// Result collects every issue found in one input
type Result struct {
	Issues []Issue
}

func (r *Result) HasIssues() bool {
	return len(r.Issues) > 0
}

func (r *Result) add(t IssueType, field, format string, args ...interface{}) {
	r.Issues = append(r.Issues, Issue{Type: t, Field: field, Description: fmt.Sprintf(format, args...)})
}

// FormatReport returns a human-readable report of all issues
func (r *Result) FormatReport() string {
	if !r.HasIssues() {
		return "No issues detected."
	}
	var b strings.Builder
	b.WriteString("Invalid input:\n")
	for _, issue := range r.Issues {
		fmt.Fprintf(&b, "- %s\n", issue.Description)
	}
	return b.String()
}

// Err returns nil when the result is clean, otherwise an error wrapping
// models.ErrGoalNotPositive if any goal was rejected.
func (r *Result) Err() error {
	if !r.HasIssues() {
		return nil
	}
	msgs := make([]string, len(r.Issues))
	goalIssue := false
	for i, issue := range r.Issues {
		msgs[i] = issue.Description
		if issue.Type == IssueGoalNotPositive {
			goalIssue = true
		}
	}
	if goalIssue {
		return fmt.Errorf("%w: %s", models.ErrGoalNotPositive, strings.Join(msgs, "; "))
	}
	return fmt.Errorf("invalid input: %s", strings.Join(msgs, "; "))
}

// ParseGoalValue coerces a form field to an integer goal. Anything that is
// not a whole number becomes 0, which then fails the positivity check.
func ParseGoalValue(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

// GoalsFromFields builds a goal payload from raw field text keyed by habit
// name. Blank fields are left out of the payload.
func GoalsFromFields(fields map[string]string) (models.Goals, Result) {
	var res Result
	goals := models.Goals{}
	for name, raw := range fields {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		kind, err := models.ParseHabitKind(name)
		if err != nil {
			res.add(IssueUnknownHabit, name, "unknown habit %q", name)
			continue
		}
		goals[kind] = ParseGoalValue(raw)
	}
	res.Issues = append(res.Issues, ValidateGoals(goals).Issues...)
	return goals, res
}

// ValidateGoals checks that every supplied goal names a known habit and is at least 1.
func ValidateGoals(goals models.Goals) Result {
	var res Result
	for _, kind := range models.AllHabitKinds {
		if v, ok := goals[kind]; ok && v < 1 {
			res.add(IssueGoalNotPositive, string(kind), "%s goal must be at least 1 (got %d)", kind, v)
		}
	}
	for kind := range goals {
		if !kind.Valid() {
			res.add(IssueUnknownHabit, string(kind), "unknown habit %q", kind)
		}
	}
	return res
}

// ValidateCredentials checks the shape of an email/password pair before it is sent.
func ValidateCredentials(c models.Credentials) Result {
	var res Result
	email := strings.TrimSpace(c.Email)
	switch {
	case email == "":
		res.add(IssueEmptyEmail, "email", "email is required")
	default:
		if _, err := mail.ParseAddress(email); err != nil {
			res.add(IssueInvalidEmail, "email", "email %q is not a valid address", email)
		}
	}
	if c.Password == "" {
		res.add(IssueEmptyPassword, "password", "password is required")
	}
	return res
}
