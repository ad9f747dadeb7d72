package privilege

import (
	"errors"
	"fmt"
	"os"
)

var ErrInsufficientPrivileges = errors.New("insufficient privileges")

// Guard checks the caller's effective identity before any account mutation.
// The identity source is injected so the check is testable without root.
type Guard struct {
	EUID func() int
}

// Root returns a guard bound to the process's real effective UID.
func Root() Guard {
	return Guard{EUID: os.Geteuid}
}

func (g Guard) Require() error {
	if uid := g.EUID(); uid != 0 {
		return fmt.Errorf("%w: effective uid %d, need root", ErrInsufficientPrivileges, uid)
	}
	return nil
}
