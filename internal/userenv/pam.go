package userenv

import (
	"fmt"

	"github.com/msteinert/pam"
)

// OpenSession opens and immediately closes a PAM session for the user so
// that session modules run their setup; pam_mkhomedir in particular creates
// a missing home directory this way.
func OpenSession(username string) error {
	tx, err := pam.StartFunc("uprov", username, func(s pam.Style, msg string) (string, error) {
		// No conversation: session-only, never answer prompts.
		return "", nil
	})
	if err != nil {
		return fmt.Errorf("pam start: %w", err)
	}
	if err := tx.AcctMgmt(pam.Silent); err != nil {
		return fmt.Errorf("pam acct_mgmt: %w", err)
	}
	if err := tx.OpenSession(pam.Silent); err != nil {
		return fmt.Errorf("pam open_session: %w", err)
	}
	if err := tx.CloseSession(pam.Silent); err != nil {
		return fmt.Errorf("pam close_session: %w", err)
	}
	return nil
}
