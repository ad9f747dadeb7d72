package accounts

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// UseraddStore creates accounts by driving useradd(8).
type UseraddStore struct {
	Timeout time.Duration
}

func NewUseraddStore() *UseraddStore {
	return &UseraddStore{Timeout: 10 * time.Second}
}

func (s *UseraddStore) Create(ctx context.Context, req Request) error {
	return s.run(ctx, "useradd", useraddArgs(req)...)
}

func useraddArgs(req Request) []string {
	args := []string{"-u", strconv.Itoa(req.UID)}
	if req.Shell != "" {
		args = append(args, "-s", req.Shell)
	}
	if req.Home != "" {
		args = append(args, "-d", req.Home)
	}
	if req.CreateHome {
		args = append(args, "-m")
	} else {
		args = append(args, "-M")
	}
	if req.PasswordHash != "" {
		args = append(args, "-p", req.PasswordHash)
	}
	return append(args, req.Name)
}

func (s *UseraddStore) run(ctx context.Context, name string, args ...string) error {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return err
		}
		return fmt.Errorf("%s %v: %s", name, args, msg)
	}
	return nil
}
