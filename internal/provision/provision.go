package provision

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/mholloway/uprov/internal/accounts"
	"github.com/mholloway/uprov/internal/logger"
	"github.com/mholloway/uprov/internal/privilege"
)

// Params describes one provisioning run over the half-open range
// [Start, End). Per index i the account is named Prefix+i with UID
// UIDBase+i; the home path is derived only when HomeRoot is set.
type Params struct {
	Start   int
	End     int
	UIDBase int
	Prefix  string
	Shell   string
	// HomeRoot, when set, derives each home as HomeRoot/<name>. The
	// directory is expected to pre-exist unless CreateHome is also set.
	HomeRoot     string
	CreateHome   bool
	PasswordHash string
	// Strict checks every store result and fails the run if any account
	// could not be created. The default is best-effort: failures are logged
	// and the run continues.
	Strict bool
	// Timings appends the per-account wall-clock duration to report lines.
	Timings bool
}

func (p Params) Validate() error {
	// [n, n) is a valid empty range: zero invocations, banner still printed.
	if p.End < p.Start {
		return fmt.Errorf("invalid range [%d, %d)", p.Start, p.End)
	}
	if p.UIDBase <= 0 {
		return fmt.Errorf("uid base must be positive, got %d", p.UIDBase)
	}
	if p.Prefix == "" {
		return fmt.Errorf("name prefix must not be empty")
	}
	return nil
}

// Provisioner creates one account per index, strictly sequentially. Each
// iteration is independent: there are no retries and no rollback of accounts
// already created in the same run.
type Provisioner struct {
	Store accounts.Store
	Out   io.Writer
	Guard privilege.Guard
}

func New(store accounts.Store, out io.Writer) *Provisioner {
	return &Provisioner{Store: store, Out: out, Guard: privilege.Root()}
}

func (p *Provisioner) Run(ctx context.Context, params Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if err := p.Guard.Require(); err != nil {
		return err
	}

	total := params.End - params.Start
	var failed []string
	for i := params.Start; i < params.End; i++ {
		req := requestFor(params, i)
		start := time.Now()
		err := p.Store.Create(ctx, req)
		elapsed := time.Since(start)
		if err != nil {
			logger.Warn("create %s: %v", req.Name, err)
			if params.Strict {
				failed = append(failed, fmt.Sprintf("%s: %v", req.Name, err))
			}
		}
		p.report(req, elapsed, params.Timings)
	}

	fmt.Fprintf(p.Out, "done: processed %d accounts\n", total)

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d accounts failed:\n  %s",
			len(failed), total, strings.Join(failed, "\n  "))
	}
	return nil
}

func requestFor(params Params, i int) accounts.Request {
	req := accounts.Request{
		Name:         fmt.Sprintf("%s%d", params.Prefix, i),
		UID:          params.UIDBase + i,
		Shell:        params.Shell,
		CreateHome:   params.CreateHome,
		PasswordHash: params.PasswordHash,
	}
	if params.HomeRoot != "" {
		req.Home = path.Join(params.HomeRoot, req.Name)
	}
	return req
}

func (p *Provisioner) report(req accounts.Request, elapsed time.Duration, timings bool) {
	line := fmt.Sprintf("created %s uid=%d shell=%s", req.Name, req.UID, req.Shell)
	if req.Home != "" {
		line += " home=" + req.Home
	}
	if timings {
		line += fmt.Sprintf(" (%s)", elapsed)
	}
	fmt.Fprintln(p.Out, line)
}
