package scheduler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/oshokin/alarm-scheduler/internal/logger"
)

// prompt is printed before each input line is read.
const prompt = "alarm> "

// errBadCommand is returned when a line does not parse as "<seconds> <message>".
var errBadCommand = errors.New("bad command")

// submitFunc hands a validated (duration, message) pair to the scheduler core.
type submitFunc func(ctx context.Context, seconds int, message string) error

// runInputLoop is the interactive request source: it prompts, reads lines
// from r and submits every well-formed request. Malformed lines are logged
// and dropped, so they never reach the core. The loop ends cleanly on EOF
// or when ctx is canceled.
func runInputLoop(ctx context.Context, r io.Reader, w io.Writer, submit submitFunc) error {
	scanner := bufio.NewScanner(r)

	for {
		if ctx.Err() != nil {
			return nil
		}

		if _, err := fmt.Fprint(w, prompt); err != nil {
			return fmt.Errorf("write prompt: %w", err)
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			// EOF.
			return nil
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		seconds, message, err := parseRequest(line)
		if err != nil {
			logger.WarnKV(ctx, "Bad command", "line", line, "error", err)
			continue
		}

		if err = submit(ctx, seconds, message); err != nil {
			logger.WarnKV(ctx, "Bad command", "line", line, "error", err)
		}
	}
}

// parseRequest splits a line into a leading integer duration and the rest of
// the line as the message, mirroring the classic "<seconds> <message>" form.
func parseRequest(line string) (int, string, error) {
	fields := strings.SplitN(strings.TrimSpace(line), " ", 2)
	if len(fields) < 2 {
		return 0, "", errBadCommand
	}

	seconds, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, "", fmt.Errorf("%w: %s", errBadCommand, fields[0])
	}

	message := strings.TrimSpace(fields[1])
	if message == "" {
		return 0, "", errBadCommand
	}

	return seconds, message, nil
}
