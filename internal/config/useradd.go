package config

import (
	"errors"
	"os"

	"gopkg.in/ini.v1"
)

// UseraddDefaultsRel is the host-relative path of the file useradd(8) reads
// its own defaults from. It is a flat KEY=value file with no sections.
const UseraddDefaultsRel = "etc/default/useradd"

// UseraddDefaults carries the subset of useradd defaults uprov honors when
// neither flags nor the config file specify a value.
type UseraddDefaults struct {
	Shell string
	Home  string
}

func LoadUseraddDefaults(path string) (UseraddDefaults, error) {
	d := UseraddDefaults{Shell: "/bin/sh", Home: "/home"}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return d, nil
		}
		return d, err
	}

	f, err := ini.Load(path)
	if err != nil {
		return d, err
	}
	sec := f.Section("")
	if v := sec.Key("SHELL").String(); v != "" {
		d.Shell = v
	}
	if v := sec.Key("HOME").String(); v != "" {
		d.Home = v
	}
	return d, nil
}
