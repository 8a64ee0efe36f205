package solver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Exec runs a solver program with the definition as its last argument and
// reads the move sequence from standard output.
type Exec struct {
	command string
	args    []string
}

// NewExec creates an Exec solver for command and its leading arguments.
func NewExec(command string, args ...string) *Exec {
	return &Exec{command: command, args: args}
}

// Name returns the command.
func (e *Exec) Name() string {
	return "exec:" + e.command
}

// Solve runs the program. A program that cannot be started is
// unavailable; a non-zero exit or an "Error" reply is a rejection.
func (e *Exec) Solve(ctx context.Context, definition string) (string, error) {
	args := append(append([]string{}, e.args...), definition)
	cmd := exec.CommandContext(ctx, e.command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = strings.TrimSpace(stdout.String())
		}
		return "", fmt.Errorf("%w: exit %d: %s", ErrRejected, exitErr.ExitCode(), msg)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return checkReply(strings.TrimSpace(stdout.String()))
}
