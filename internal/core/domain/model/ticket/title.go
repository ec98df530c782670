package ticket

import (
	"errors"

	"ticketing/internal/pkg/errs"
	"ticketing/internal/pkg/guard"
)

// MaxTitleLength is the longest accepted title, in bytes.
const MaxTitleLength = 50

var (
	ErrTitleIsEmpty   = errors.New("The title cannot be empty")
	ErrTitleIsTooLong = errors.New("The title cannot be longer than 50 bytes")

	// ErrTitleIsNotConstructed is returned for a Title that was declared rather
	// than built by NewTitle.
	ErrTitleIsNotConstructed = errs.NewValueIsRequiredError("Title must be created via NewTitle constructor")
)

// Title is the short, human-readable name of a ticket.
//
// Its length is counted in bytes, so a title of multi-byte characters reaches the
// limit with fewer than 50 characters. Two titles are equal when their text is.
//
// Example:
//
//	title, err := ticket.NewTitle("Fix login redirect")
//	if errors.Is(err, ticket.ErrTitleIsTooLong) {
//	    // ask for a shorter title
//	}
type Title struct {
	value string
	guard guard.ConstructorGuard
}

// NewTitle returns ErrTitleIsEmpty for "" and ErrTitleIsTooLong for anything
// longer than MaxTitleLength bytes.
func NewTitle(value string) (Title, error) {
	switch n := len(value); {
	case n == 0:
		return Title{}, ErrTitleIsEmpty
	case n > MaxTitleLength:
		return Title{}, ErrTitleIsTooLong
	}

	return Title{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// TitleFromBytes is NewTitle for a byte buffer. The title keeps its own copy.
func TitleFromBytes(value []byte) (Title, error) {
	return NewTitle(string(value))
}

// Validate reports whether the title was built by NewTitle.
func (t Title) Validate() error {
	return t.guard.Validate(ErrTitleIsNotConstructed)
}

// String returns the title text exactly as it was given.
func (t Title) String() string {
	return t.value
}

// IsEqual reports whether both titles hold the same text.
func (t Title) IsEqual(other Title) bool {
	return t.value == other.value
}

// MarshalText implements encoding.TextMarshaler.
func (t Title) MarshalText() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return []byte(t.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The receiver is left
// unchanged when the text is not a valid title.
func (t *Title) UnmarshalText(text []byte) error {
	title, err := TitleFromBytes(text)
	if err != nil {
		return err
	}
	*t = title
	return nil
}
