package main

import (
	"os"
	"path/filepath"
	"testing"

	"mqctl/internal/testsupport"
)

func TestConfigInitAndValidate(t *testing.T) {
	dir := isolateConfig(t)
	svc := testsupport.NewFakeService()

	out, _, code := runCLI(t, svc, "config", "validate")
	if code != 0 {
		t.Fatalf("config validate exit = %d", code)
	}
	requireContains(t, out, "defaults were used")
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(dir, "conf", "config.toml")
	out, _, code = runCLI(t, svc, "config", "init", "--path", target)
	if code != 0 {
		t.Fatalf("config init exit = %d", code)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, code := runCLI(t, svc, "config", "init", "--path", target); code == 0 {
		t.Fatal("expected refusal to overwrite")
	}
	if _, _, code := runCLI(t, svc, "config", "init", "--path", target, "--overwrite"); code != 0 {
		t.Fatalf("overwrite exit = %d", code)
	}

	t.Setenv("MQCTL_CONFIG", target)
	out, _, code = runCLI(t, svc, "config", "validate")
	if code != 0 {
		t.Fatalf("validate sample exit = %d", code)
	}
	requireContains(t, out, "Default mode: 755, priority: 16384, output: text")
	if len(svc.Calls()) != 0 {
		t.Fatal("config commands must not touch queues")
	}
}
