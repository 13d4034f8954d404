package patterns

import (
	"fmt"
	"regexp"
	"strings"
)

// Category names an SSH authentication event.
type Category string

// Categories in classification priority order.
const (
	FailedPassword   Category = "failed_password"
	FailedPublickey  Category = "failed_publickey"
	FailedPreauth    Category = "failed_preauth"
	AcceptedPassword Category = "accepted_password"
	InvalidUser      Category = "invalid_user"
)

// IsFailure reports whether c counts towards failed authentication attempts.
func (c Category) IsFailure() bool {
	return c != AcceptedPassword
}

// Set names.
const (
	SetExtended = "extended"
	SetBase     = "base"
)

// Pattern matches one event category. Expr must define the named groups
// "user" and "ip".
type Pattern struct {
	Category Category
	Expr     *regexp.Regexp
}

// Event is a classified log line.
type Event struct {
	Category Category
	User     string
	IP       string
}

// Set is an ordered list of patterns. The first matching pattern wins.
type Set struct {
	Name     string
	Patterns []Pattern
}

const (
	exprFailedPassword   = `Failed password for (?:invalid user )?(?P<user>\S+) from (?P<ip>\S+)`
	exprFailedPublickey  = `Failed publickey for (?:invalid user )?(?P<user>\S+) from (?P<ip>\S+)`
	exprPreauthClose     = `Connection closed by authenticating user (?P<user>\S+) (?P<ip>\S+) port \d+ \[preauth\]`
	exprAcceptedPassword = `Accepted password for (?P<user>\S+) from (?P<ip>\S+)`
	exprInvalidUser      = `Invalid user (?P<user>\S+) from (?P<ip>\S+)`
)

// Extended returns the canonical five-category set: failed password,
// failed publickey, preauth close, accepted password, invalid user.
func Extended() *Set {
	return &Set{
		Name: SetExtended,
		Patterns: []Pattern{
			compile(FailedPassword, exprFailedPassword),
			compile(FailedPublickey, exprFailedPublickey),
			compile(FailedPreauth, exprPreauthClose),
			compile(AcceptedPassword, exprAcceptedPassword),
			compile(InvalidUser, exprInvalidUser),
		},
	}
}

// Base returns the three-category set without publickey and preauth
// failures.
func Base() *Set {
	return &Set{
		Name: SetBase,
		Patterns: []Pattern{
			compile(FailedPassword, exprFailedPassword),
			compile(AcceptedPassword, exprAcceptedPassword),
			compile(InvalidUser, exprInvalidUser),
		},
	}
}

// Names lists the sets Lookup accepts.
func Names() []string {
	return []string{SetExtended, SetBase}
}

// Lookup builds the set called name.
func Lookup(name string) (*Set, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case SetExtended, "":
		return Extended(), nil
	case SetBase:
		return Base(), nil
	default:
		return nil, fmt.Errorf("unknown pattern set %q (want %s)", name, strings.Join(Names(), "|"))
	}
}

func compile(c Category, expr string) Pattern {
	return Pattern{Category: c, Expr: regexp.MustCompile(expr)}
}

// ClassifyLine returns the event for the first pattern that matches
// anywhere in line.
func (s *Set) ClassifyLine(line string) (Event, bool) {
	for _, p := range s.Patterns {
		m := p.Expr.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		return Event{
			Category: p.Category,
			User:     m[p.Expr.SubexpIndex("user")],
			IP:       m[p.Expr.SubexpIndex("ip")],
		}, true
	}
	return Event{}, false
}

// Categories returns the categories of the set in priority order.
func (s *Set) Categories() []Category {
	out := make([]Category, 0, len(s.Patterns))
	for _, p := range s.Patterns {
		out = append(out, p.Category)
	}
	return out
}

// Has reports whether the set recognises c.
func (s *Set) Has(c Category) bool {
	for _, p := range s.Patterns {
		if p.Category == c {
			return true
		}
	}
	return false
}

// FailureCategories returns the failure categories of the set in priority
// order.
func (s *Set) FailureCategories() []Category {
	var out []Category
	for _, c := range s.Categories() {
		if c.IsFailure() {
			out = append(out, c)
		}
	}
	return out
}
