package etcfiles

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mholloway/uprov/internal/accounts"
	"github.com/mholloway/uprov/internal/hostfs"
)

// Store implements accounts.Store by editing the account databases directly.
type Store struct {
	PasswdPath string
	ShadowPath string
	GroupPath  string
	// HomeBase is recorded in passwd when a request carries no home path,
	// matching what useradd(8) does with HOME from /etc/default/useradd.
	HomeBase string
	// DefaultShell is recorded when a request carries no shell.
	DefaultShell string
}

// NewStore resolves the database paths under the configured host root.
func NewStore() (*Store, error) {
	passwd, err := hostfs.Path(hostfs.EtcPasswdRel)
	if err != nil {
		return nil, err
	}
	shadow, err := hostfs.Path(hostfs.EtcShadowRel)
	if err != nil {
		return nil, err
	}
	group, err := hostfs.Path(hostfs.EtcGroupRel)
	if err != nil {
		return nil, err
	}
	return &Store{
		PasswdPath:   passwd,
		ShadowPath:   shadow,
		GroupPath:    group,
		HomeBase:     "/home",
		DefaultShell: "/bin/sh",
	}, nil
}

func (s *Store) Create(ctx context.Context, req accounts.Request) error {
	if !ValidUsername(req.Name) {
		return fmt.Errorf("invalid username %q", req.Name)
	}

	unlock, err := hostfs.LockAccountDB(filepath.Dir(s.PasswdPath))
	if err != nil {
		return err
	}
	defer unlock()

	pw, err := LoadPasswd(s.PasswdPath)
	if err != nil {
		return err
	}
	sh, err := LoadShadow(s.ShadowPath)
	if err != nil {
		return err
	}
	gr, err := LoadGroup(s.GroupPath)
	if err != nil {
		return err
	}

	if pw.Find(req.Name) != nil || sh.Find(req.Name) != nil {
		return fmt.Errorf("user already exists: %s", req.Name)
	}
	if pw.FindByUID(req.UID) != nil {
		return fmt.Errorf("uid already in use: %d", req.UID)
	}

	// Primary group mirrors the user: same name, GID equal to the UID.
	if err := gr.Add(GroupEntry{Name: req.Name, Passwd: "x", GID: req.UID}); err != nil {
		return err
	}

	home := req.Home
	if home == "" {
		home = filepath.Join(s.HomeBase, req.Name)
	}
	shell := req.Shell
	if shell == "" {
		shell = s.DefaultShell
	}
	if err := pw.Add(PasswdEntry{Name: req.Name, Passwd: "x", UID: req.UID, GID: req.UID, Gecos: "", Home: home, Shell: shell}); err != nil {
		return err
	}

	hash := req.PasswordHash
	if hash == "" {
		hash = "!" // locked until a password is set
	}
	days := fmt.Sprintf("%d", time.Now().Unix()/86400)
	if err := sh.Add(ShadowEntry{
		Name:       req.Name,
		Hash:       hash,
		LastChange: days,
		Min:        "0",
		Max:        "99999",
		Warn:       "7",
		Inactive:   "",
		Expire:     "",
		Reserved:   "",
	}); err != nil {
		return err
	}

	if req.CreateHome {
		abs, err := hostfs.Abs(home)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(abs, 0755); err != nil {
			return err
		}
		_ = os.Chown(abs, req.UID, req.UID)
	}

	// Persist files.
	if err := hostfs.WriteFileAtomic(s.PasswdPath, pw.Bytes(), 0644); err != nil {
		return err
	}
	if err := hostfs.WriteFileAtomic(s.ShadowPath, sh.Bytes(), 0600); err != nil {
		return err
	}
	return hostfs.WriteFileAtomic(s.GroupPath, gr.Bytes(), 0644)
}
