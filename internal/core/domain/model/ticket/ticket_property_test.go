package ticket_test

import (
	"strings"
	"testing"
	"unicode"

	"ticketing/internal/core/domain/model/ticket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestTitleProperty_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.SliceOfN(rapid.Byte(), 1, ticket.MaxTitleLength).Draw(t, "raw")
		text := string(raw)

		title, err := ticket.NewTitle(text)

		require.NoError(t, err)
		assert.Equal(t, text, title.String())

		encoded, err := title.MarshalText()
		require.NoError(t, err)
		var decoded ticket.Title
		require.NoError(t, decoded.UnmarshalText(encoded))
		assert.True(t, decoded.IsEqual(title))
	})
}

func TestTitleProperty_RejectsOverlongText(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(ticket.MaxTitleLength+1, 4*ticket.MaxTitleLength).Draw(t, "n")

		_, err := ticket.NewTitle(strings.Repeat("x", n))

		require.ErrorIs(t, err, ticket.ErrTitleIsTooLong)
	})
}

func TestStatusProperty_CaseAndPaddingInsensitive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		status := rapid.SampledFrom(ticket.Statuses()).Draw(t, "status")
		upper := rapid.SliceOfN(rapid.Bool(), len(status.String()), len(status.String())).Draw(t, "upper")
		left := rapid.StringMatching(`[ \t\n]{0,4}`).Draw(t, "left")
		right := rapid.StringMatching(`[ \t\n]{0,4}`).Draw(t, "right")

		var b strings.Builder
		for i, r := range status.String() {
			if upper[i] {
				r = unicode.ToUpper(r)
			} else {
				r = unicode.ToLower(r)
			}
			b.WriteRune(r)
		}

		parsed, err := ticket.ParseStatus(left + b.String() + right)

		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	})
}

func TestStatusProperty_RejectsEverythingElse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-z ]{0,12}`).Draw(t, "text")
		normalized := strings.TrimSpace(text)
		if normalized == "todo" || normalized == "inprogress" || normalized == "done" {
			t.Skip("drew a valid status")
		}

		_, err := ticket.ParseStatus(text)

		var statusErr *ticket.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, normalized, statusErr.InvalidStatus)
	})
}

func BenchmarkParseStatus(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ticket.ParseStatus("  InProgress ")
	}
}
