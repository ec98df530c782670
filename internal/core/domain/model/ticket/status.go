package ticket

import (
	"fmt"
	"strings"

	"ticketing/internal/pkg/errs"
)

// Status is where a ticket stands in its workflow.
//
// Only ToDo, InProgress and Done are statuses. They are numbered from 1 so that
// a declared but unassigned Status fails Validate instead of passing for ToDo.
type Status int

const (
	// ToDo is work that has not started.
	ToDo Status = iota + 1

	// InProgress is work that has started and is not finished.
	InProgress

	// Done is finished work.
	Done
)

// StatusError is returned by ParseStatus for text that names no status.
// InvalidStatus holds the rejected text after trimming and lowercasing.
type StatusError struct {
	InvalidStatus string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("`%s` is not a valid status. Use one of: ToDo, InProgress, Done", e.InvalidStatus)
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		ToDo:       "ToDo",
		InProgress: "InProgress",
		Done:       "Done",
	}
}

// Statuses returns every status in workflow order.
func Statuses() []Status {
	return []Status{ToDo, InProgress, Done}
}

// ParseStatus trims surrounding whitespace, lowercases the rest and matches it
// against "todo", "inprogress" and "done".
//
// Example:
//
//	status, err := ticket.ParseStatus("  InProgress ")
//	// status == ticket.InProgress, err == nil
func ParseStatus(text string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(text))

	switch normalized {
	case "todo":
		return ToDo, nil
	case "inprogress":
		return InProgress, nil
	case "done":
		return Done, nil
	default:
		return 0, &StatusError{InvalidStatus: normalized}
	}
}

// StatusFromBytes is ParseStatus for a byte buffer.
func StatusFromBytes(text []byte) (Status, error) {
	return ParseStatus(string(text))
}

// Validate returns an error for any value other than ToDo, InProgress or Done.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsOutOfRangeError("status", int(s), int(ToDo), int(Done))
	}
	return nil
}

// String returns "ToDo", "InProgress" or "Done". ParseStatus accepts the result.
// Values outside the set render as "Status(n)".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The receiver is left
// unchanged when the text is not a status.
func (s *Status) UnmarshalText(text []byte) error {
	status, err := StatusFromBytes(text)
	if err != nil {
		return err
	}
	*s = status
	return nil
}
