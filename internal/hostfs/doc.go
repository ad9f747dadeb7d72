package hostfs

// Package hostfs provides safe access helpers for the account databases and
// home directories of the managed host.
//
// By default the host is the root filesystem itself (Root() == "/"). When
// uprov runs inside a container with the host bind-mounted, point Root at the
// mount:
//
//	/etc/passwd  -> <root>/etc/passwd
//	/etc/shadow  -> <root>/etc/shadow
//	/etc/group   -> <root>/etc/group
//	/home/...    -> <root>/home/...
