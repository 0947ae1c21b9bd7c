package options

import (
	"os/user"
	"strconv"
)

// IdentityResolver maps user and group names to numeric ids.
type IdentityResolver interface {
	LookupUser(name string) (uint32, bool)
	LookupGroup(name string) (uint32, bool)
}

// SystemIdentities resolves names through the host's user database.
type SystemIdentities struct{}

func (SystemIdentities) LookupUser(name string) (uint32, bool) {
	u, err := user.Lookup(name)
	if err != nil {
		return 0, false
	}
	return parseID(u.Uid)
}

func (SystemIdentities) LookupGroup(name string) (uint32, bool) {
	g, err := user.LookupGroup(name)
	if err != nil {
		return 0, false
	}
	return parseID(g.Gid)
}

func parseID(text string) (uint32, bool) {
	v, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}
