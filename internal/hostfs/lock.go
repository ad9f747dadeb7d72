package hostfs

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// LockAccountDB takes the advisory lock the shadow-utils tools use: an
// exclusive flock on .pwd.lock in the directory holding the account
// databases. The returned function releases the lock.
func LockAccountDB(dir string) (func(), error) {
	f, err := os.OpenFile(filepath.Join(dir, ".pwd.lock"), os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return nil, err
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		_ = f.Close()
		return nil, err
	}
	return func() {
		_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
		_ = f.Close()
	}, nil
}
