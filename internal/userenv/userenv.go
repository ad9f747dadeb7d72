package userenv

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const captureTimeout = 15 * time.Second

// Capture runs a login shell for the user and returns its environment as a
// map. Requires root: su(1) only skips the password prompt for UID 0.
func Capture(ctx context.Context, username string) (map[string]string, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("empty username")
	}
	ctx, cancel := context.WithTimeout(ctx, captureTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "su", "-", username, "-c", "printenv")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("su %s: %w", username, err)
		}
		return nil, fmt.Errorf("su %s: %s", username, msg)
	}
	return ParseEnv(stdout.Bytes()), nil
}

// ParseEnv splits printenv output into KEY=VALUE pairs. Lines without '='
// are skipped; '=' inside a value is preserved.
func ParseEnv(out []byte) map[string]string {
	env := make(map[string]string)
	for _, line := range strings.Split(string(out), "\n") {
		if line == "" {
			continue
		}
		kv := strings.SplitN(line, "=", 2)
		if len(kv) != 2 || kv[0] == "" {
			continue
		}
		env[kv[0]] = kv[1]
	}
	return env
}
