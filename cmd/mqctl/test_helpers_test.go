package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"mqctl/internal/mqueue"
)

type fakeIdentities struct {
	users  map[string]uint32
	groups map[string]uint32
}

func (f fakeIdentities) LookupUser(name string) (uint32, bool) {
	id, ok := f.users[name]
	return id, ok
}

func (f fakeIdentities) LookupGroup(name string) (uint32, bool) {
	id, ok := f.groups[name]
	return id, ok
}

var testIdentities = fakeIdentities{
	users:  map[string]uint32{"alice": 1001},
	groups: map[string]uint32{"staff": 50},
}

// isolateConfig points config lookup at an empty directory so the host's
// configuration never leaks into a test.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("MQCTL_CONFIG", filepath.Join(dir, "missing.toml"))
	t.Setenv("MQCTL_LOG_LEVEL", "")
	t.Setenv("MQCTL_LOG_FORMAT", "")
	return dir
}

func runCLI(t *testing.T, svc mqueue.Service, args ...string) (string, string, int) {
	t.Helper()
	return runCLIWith(t, newCommandContext(svc, testIdentities), args...)
}

func runCLIWith(t *testing.T, ctx *commandContext, args ...string) (string, string, int) {
	t.Helper()
	cmd := newRootCommandWith(ctx)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), exitCode(err)
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected %q to contain %q", haystack, needle)
	}
}
