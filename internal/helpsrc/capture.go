// Package helpsrc captures the help screen of an installed program.
package helpsrc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// helpFlags are tried in order; the first one producing output wins.
var helpFlags = []string{"--help", "-h"}

// pagerEnv keeps programs like git or man from blocking on a pager.
var pagerEnv = []string{
	"PAGER=cat",
	"GIT_PAGER=cat",
	"MANPAGER=cat",
	"TERM=dumb",
}

// Capture runs program with args followed by a help flag and returns the
// combined output. Non-zero exit codes are ignored since many tools exit 1 or
// 2 after printing usage; only empty output counts as failure.
func Capture(ctx context.Context, program string, args []string) (string, error) {
	path, err := exec.LookPath(program)
	if err != nil {
		return "", fmt.Errorf("helpsrc: %q not found in PATH", program)
	}

	for _, flag := range helpFlags {
		cmdArgs := append(append([]string{}, args...), flag)
		cmd := exec.CommandContext(ctx, path, cmdArgs...)
		cmd.Env = append(os.Environ(), pagerEnv...)

		out, runErr := cmd.CombinedOutput()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("helpsrc: %q timed out: %w", program, ctxErr)
		}
		var exitErr *exec.ExitError
		if runErr != nil && !errors.As(runErr, &exitErr) {
			return "", fmt.Errorf("helpsrc: running %q: %w", program, runErr)
		}
		if len(strings.TrimSpace(string(out))) > 0 {
			return string(out), nil
		}
	}

	return "", fmt.Errorf("helpsrc: no help output for %q", strings.Join(append([]string{program}, args...), " "))
}
