package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUseraddArgsWithHome(t *testing.T) {
	args := useraddArgs(Request{
		Name:  "user200",
		UID:   100200,
		Shell: "/bin/bash",
		Home:  "/cluster-data/user-homes/user200",
	})
	assert.Equal(t, []string{
		"-u", "100200",
		"-s", "/bin/bash",
		"-d", "/cluster-data/user-homes/user200",
		"-M",
		"user200",
	}, args)
}

func TestUseraddArgsWithoutHome(t *testing.T) {
	args := useraddArgs(Request{Name: "user0", UID: 100000, Shell: "/bin/sh"})
	assert.NotContains(t, args, "-d")
	assert.Contains(t, args, "-M")
	assert.Equal(t, "user0", args[len(args)-1])
}

func TestUseraddArgsCreateHome(t *testing.T) {
	args := useraddArgs(Request{Name: "u", UID: 1500, Home: "/home/u", CreateHome: true})
	assert.Contains(t, args, "-m")
	assert.NotContains(t, args, "-M")
}

func TestUseraddArgsPasswordHash(t *testing.T) {
	args := useraddArgs(Request{Name: "u", UID: 1500, PasswordHash: "$6$salt$hash"})
	assert.Contains(t, args, "-p")
	assert.Contains(t, args, "$6$salt$hash")
}
