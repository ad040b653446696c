package scheduler

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParseRequest covers well-formed lines and the malformed shapes that
// must never reach the submitter.
func TestParseRequest(t *testing.T) {
	t.Parallel()

	seconds, message, err := parseRequest("5 tea is ready")
	require.NoError(t, err)
	require.Equal(t, 5, seconds)
	require.Equal(t, "tea is ready", message)

	// Surrounding whitespace is tolerated.
	seconds, message, err = parseRequest("  10   wake up  ")
	require.NoError(t, err)
	require.Equal(t, 10, seconds)
	require.Equal(t, "wake up", message)

	// Negative numbers parse here; the domain rejects them at submission.
	seconds, _, err = parseRequest("-1 x")
	require.NoError(t, err)
	require.Equal(t, -1, seconds)

	for _, line := range []string{"5", "abc message", "5 ", "   "} {
		_, _, err = parseRequest(line)
		require.ErrorIs(t, err, errBadCommand, "line %q", line)
	}
}

// TestRunInputLoop_SubmitsParsedLines feeds a scripted session and checks
// only the valid requests are submitted, in order.
func TestRunInputLoop_SubmitsParsedLines(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"5 first alarm",
		"",
		"not a number",
		"3 second alarm",
	}, "\n")

	type submission struct {
		seconds int
		message string
	}

	var got []submission

	err := runInputLoop(context.Background(), strings.NewReader(input), &strings.Builder{},
		func(_ context.Context, seconds int, message string) error {
			got = append(got, submission{seconds: seconds, message: message})
			return nil
		})

	require.NoError(t, err)
	require.Equal(t, []submission{
		{seconds: 5, message: "first alarm"},
		{seconds: 3, message: "second alarm"},
	}, got)
}

// TestRunInputLoop_PromptsPerLine verifies a prompt precedes every read.
func TestRunInputLoop_PromptsPerLine(t *testing.T) {
	t.Parallel()

	var out strings.Builder

	err := runInputLoop(context.Background(), strings.NewReader("1 a\n2 b\n"), &out,
		func(context.Context, int, string) error { return nil })

	require.NoError(t, err)
	// One prompt per line plus the one printed before EOF is observed.
	require.Equal(t, 3, strings.Count(out.String(), prompt))
}

// TestRunInputLoop_SubmitErrorsAreNotFatal ensures a rejected submission
// (for example a too-long message) does not end the session.
func TestRunInputLoop_SubmitErrorsAreNotFatal(t *testing.T) {
	t.Parallel()

	rejected := true
	calls := 0

	err := runInputLoop(context.Background(), strings.NewReader("1 a\n2 b\n"), &strings.Builder{},
		func(context.Context, int, string) error {
			calls++

			if rejected {
				rejected = false
				return errBadCommand
			}

			return nil
		})

	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

// TestRunInputLoop_CanceledContext exits cleanly without reading.
func TestRunInputLoop_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runInputLoop(ctx, strings.NewReader("1 a\n"), &strings.Builder{},
		func(context.Context, int, string) error {
			t.Fatal("submit must not be called after cancellation")
			return nil
		})

	require.NoError(t, err)
}
