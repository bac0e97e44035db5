// FILE: internal/engine/exec.go
package engine

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// execQuery spawns the oracle binary, feeds it the request on stdin, and
// captures its single response line. The process always terminates on its
// own after one response; the context timeout covers a wedged binary.
func (o *Oracle) execQuery(ctx context.Context, request string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, o.path)
	cmd.Stdin = strings.NewReader(request + "\n")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("oracle timed out after %s", o.timeout)
		}
		return "", fmt.Errorf("oracle failed: %w (stderr: %s)", err, strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(stdout.String()), nil
}
