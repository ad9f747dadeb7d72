package accounts

import "context"

// Request describes one account to register with the OS account database.
type Request struct {
	Name string
	UID  int
	// Shell is the login shell. Empty lets the store apply its default.
	Shell string
	// Home is the home directory to record. Empty lets the store apply its
	// default; the directory itself is only created when CreateHome is set.
	Home         string
	CreateHome   bool
	PasswordHash string // crypt(3) shadow hash; empty leaves the account locked
}

// Store is the account-creation capability. Implementations mutate the OS
// account database; tests substitute a fake.
type Store interface {
	Create(ctx context.Context, req Request) error
}
