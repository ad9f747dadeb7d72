package etcfiles

// Package etcfiles implements account creation by editing the passwd, shadow
// and group databases directly.
//
// Parsing preserves comments and unrecognized lines byte-for-byte, and every
// rewrite is atomic under the shadow-utils .pwd.lock advisory lock.
