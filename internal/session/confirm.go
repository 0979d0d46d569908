package session

import "strings"

// ConfirmationKind groups queries by how they must be confirmed
type ConfirmationKind string

const (
	KindNormal ConfirmationKind = "normal"
	KindCreate ConfirmationKind = "create"
	KindDelete ConfirmationKind = "delete"
	KindDump   ConfirmationKind = "dump"
)

// ConfirmDumpText must be typed verbatim to run a DUMP
const ConfirmDumpText = "CONFIRM DUMP"

// Confirmation is what the caller acknowledged before running a query
type Confirmation struct {
	Confirmed bool
	Text      string
}

// Classify inspects the leading keyword. ALTER is gated even though the
// interpreter treats it as a SELECT.
func Classify(query string) ConfirmationKind {
	upper := strings.ToUpper(strings.TrimSpace(query))
	switch {
	case strings.HasPrefix(upper, "CREATE"),
		strings.HasPrefix(upper, "INSERT"),
		strings.HasPrefix(upper, "ALTER"):
		return KindCreate
	case strings.HasPrefix(upper, "DELETE"), strings.HasPrefix(upper, "DROP"):
		return KindDelete
	case strings.HasPrefix(upper, "DUMP"):
		return KindDump
	}
	return KindNormal
}

// Satisfies reports whether c is enough to run a query of kind k
func (c Confirmation) Satisfies(k ConfirmationKind) bool {
	switch k {
	case KindNormal:
		return true
	case KindDump:
		return c.Text == ConfirmDumpText
	}
	return c.Confirmed
}
