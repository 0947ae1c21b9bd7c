package main

import (
	"encoding/json"
	"strings"
	"syscall"
	"testing"

	"mqctl/internal/testsupport"
)

func TestNoArgumentsPrintsUsage(t *testing.T) {
	isolateConfig(t)
	svc := testsupport.NewFakeService()

	out, _, code := runCLI(t, svc)
	if code != 0 {
		t.Fatalf("exit = %d, want 0", code)
	}
	requireContains(t, out, "usage:")
	requireContains(t, out, "mqctl create -q <queue>")
}

func TestHelpVerbPrintsUsage(t *testing.T) {
	isolateConfig(t)
	out, _, code := runCLI(t, testsupport.NewFakeService(), "help")
	if code != 0 {
		t.Fatalf("exit = %d, want 0", code)
	}
	requireContains(t, out, "usage:")
}

func TestUnknownVerb(t *testing.T) {
	isolateConfig(t)
	svc := testsupport.NewFakeService()

	_, _, code := runCLI(t, svc, "foo")
	if code != int(syscall.EINVAL) {
		t.Fatalf("exit = %d, want EINVAL", code)
	}
	if calls := svc.Calls(); len(calls) != 0 {
		t.Fatalf("expected no service calls, got %v", calls)
	}
}

func TestCreateFreshQueue(t *testing.T) {
	isolateConfig(t)
	svc := testsupport.NewFakeService()

	_, stderr, code := runCLI(t, svc, "create", "-q", "/app", "-s", "100", "-d", "10")
	if code != 0 {
		t.Fatalf("exit = %d, stderr %q", code, stderr)
	}
	q, ok := svc.Queue("/app")
	if !ok {
		t.Fatal("queue not created")
	}
	if q.MaxSize != 100 || q.MaxDepth != 10 || q.Mode != 0o755 {
		t.Fatalf("queue = %+v", q)
	}
	if svc.OpenHandles() != 0 {
		t.Fatalf("leaked %d handles", svc.OpenHandles())
	}
}

func TestCreateAliasChangesModeOnly(t *testing.T) {
	isolateConfig(t)
	svc := testsupport.NewFakeService()
	svc.AddQueue("/app", 4, 64, 0o644)

	_, stderr, code := runCLI(t, svc, "attr", "-q", "/app", "-m", "700")
	if code != 0 {
		t.Fatalf("exit = %d, stderr %q", code, stderr)
	}
	q, _ := svc.Queue("/app")
	if q.Mode != 0o700 || q.MaxDepth != 4 || q.MaxSize != 64 {
		t.Fatalf("queue = %+v", q)
	}
	if n := svc.CallCount("chmod"); n != 1 {
		t.Fatalf("chmod calls = %d, want 1", n)
	}
}

func TestCreateResolvesNamedOwner(t *testing.T) {
	isolateConfig(t)
	svc := testsupport.NewFakeService()

	_, stderr, code := runCLI(t, svc, "create", "-q", "/app", "-s", "8", "-d", "2", "-u", "alice", "-g", "staff")
	if code != 0 {
		t.Fatalf("exit = %d, stderr %q", code, stderr)
	}
	q, _ := svc.Queue("/app")
	if q.UID != 1001 || q.GID != 50 {
		t.Fatalf("owner = %d:%d, want 1001:50", q.UID, q.GID)
	}
}

func TestCreateMissingSizeIsInvalid(t *testing.T) {
	isolateConfig(t)
	svc := testsupport.NewFakeService()

	_, stderr, code := runCLI(t, svc, "create", "-q", "/app", "-d", "10")
	if code != int(syscall.EINVAL) {
		t.Fatalf("exit = %d, want EINVAL", code)
	}
	requireContains(t, stderr, "-s maximum message size not provided")
	if svc.CallCount("create") != 0 {
		t.Fatal("create must not be attempted")
	}
}

func TestValidationFailureMakesNoCalls(t *testing.T) {
	isolateConfig(t)
	svc := testsupport.NewFakeService()

	_, stderr, code := runCLI(t, svc, "send", "-c", "hello")
	if code != int(syscall.EINVAL) {
		t.Fatalf("exit = %d, want EINVAL", code)
	}
	requireContains(t, stderr, "error: missing -q, or no sane queue name given")
	if calls := svc.Calls(); len(calls) != 0 {
		t.Fatalf("expected no service calls, got %v", calls)
	}
}

func TestSendWithPriority(t *testing.T) {
	isolateConfig(t)
	svc := testsupport.NewFakeService()
	svc.AddQueue("/app", 10, 100, 0o644)

	_, stderr, code := runCLI(t, svc, "send", "-q", "/app", "-c", "hello", "-p", "5")
	if code != 0 {
		t.Fatalf("exit = %d, stderr %q", code, stderr)
	}
	q, _ := svc.Queue("/app")
	if len(q.Messages) != 1 || string(q.Messages[0].Body) != "hello" || q.Messages[0].Priority != 5 {
		t.Fatalf("messages = %+v", q.Messages)
	}
}

func TestSendTruncatesLongPayload(t *testing.T) {
	isolateConfig(t)
	svc := testsupport.NewFakeService()
	svc.AddQueue("/app", 10, 100, 0o644)

	payload := strings.Repeat("x", 1000)
	_, stderr, code := runCLI(t, svc, "send", "-q", "/app", "-c", payload)
	if code != 0 {
		t.Fatalf("exit = %d, stderr %q", code, stderr)
	}
	requireContains(t, stderr, "warning: truncating message")
	q, _ := svc.Queue("/app")
	if len(q.Messages) != 1 || len(q.Messages[0].Body) != 100 {
		t.Fatalf("expected one 100-byte message, got %+v", q.Messages)
	}
}

func TestUnlinkLastFailureWins(t *testing.T) {
	isolateConfig(t)
	svc := testsupport.NewFakeService()
	svc.AddQueue("/app", 10, 100, 0o644)

	_, stderr, code := runCLI(t, svc, "rm", "-q", "/app", "-q", "/missing")
	if code != int(syscall.ENOENT) {
		t.Fatalf("exit = %d, want ENOENT", code)
	}
	if _, ok := svc.Queue("/app"); ok {
		t.Fatal("/app should be removed")
	}
	requireContains(t, stderr, "queue=/missing")
}

func TestUnrecognizedArgumentSkipped(t *testing.T) {
	isolateConfig(t)
	svc := testsupport.NewFakeService()
	svc.AddQueue("/app", 10, 100, 0o644)

	_, stderr, code := runCLI(t, svc, "unlink", "-x", "-q", "/app")
	if code != 0 {
		t.Fatalf("exit = %d, stderr %q", code, stderr)
	}
	requireContains(t, stderr, "warning: skipping unrecognized argument arg=-x")
	if _, ok := svc.Queue("/app"); ok {
		t.Fatal("/app should be removed")
	}
}

func TestInfoTextLayout(t *testing.T) {
	isolateConfig(t)
	svc := testsupport.NewFakeService()
	q := svc.AddQueue("/app", 10, 100, 0o640)
	q.Messages = []testsupport.FakeMessage{{Body: []byte("a"), Priority: 1}, {Body: []byte("b"), Priority: 1}}

	out, stderr, code := runCLI(t, svc, "cat", "-q", "/app")
	if code != 0 {
		t.Fatalf("exit = %d, stderr %q", code, stderr)
	}
	want := "queue: '/app'\nQSIZE: 200\nMSGSIZE: 100\nMAXMSG: 10\nCURMSG: 2\nflags: 000\nUID: 1000\nGID: 1000\nMODE: 640\n"
	if out != want {
		t.Fatalf("info output:\n%s\nwant:\n%s", out, want)
	}
}

func TestInfoWithoutStatOmitsOwner(t *testing.T) {
	isolateConfig(t)
	svc := testsupport.NewFakeService()
	svc.AddQueue("/app", 10, 100, 0o640)

	out, _, code := runCLI(t, testsupport.WithoutStat(svc), "info", "-q", "/app")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if strings.Contains(out, "UID:") {
		t.Fatalf("unexpected owner lines: %q", out)
	}
}

func TestInfoJSON(t *testing.T) {
	isolateConfig(t)
	svc := testsupport.NewFakeService()
	svc.AddQueue("/a", 10, 100, 0o640)
	svc.AddQueue("/b", 5, 50, 0o600)

	out, stderr, code := runCLI(t, svc, "info", "-q", "/a", "-q", "/b", "-o", "json")
	if code != 0 {
		t.Fatalf("exit = %d, stderr %q", code, stderr)
	}
	var infos []queueInfoJSON
	if err := json.Unmarshal([]byte(out), &infos); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(infos) != 2 || infos[0].Queue != "/a" || infos[1].MaxDepth != 5 || infos[1].Mode != "600" {
		t.Fatalf("infos = %+v", infos)
	}
}

func TestInfoTable(t *testing.T) {
	isolateConfig(t)
	svc := testsupport.NewFakeService()
	svc.AddQueue("/app", 2000, 2048, 0o640)

	out, _, code := runCLI(t, svc, "info", "-q", "/app", "--output", "table")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	for _, want := range []string{"QUEUE", "/app", "2.0 KiB", "2,000", "640"} {
		requireContains(t, out, want)
	}
}

func TestReceiveHighestPriority(t *testing.T) {
	isolateConfig(t)
	svc := testsupport.NewFakeService()
	svc.AddQueue("/app", 10, 100, 0o644)

	for _, send := range [][]string{
		{"send", "-q", "/app", "-c", "low", "-p", "1"},
		{"send", "-q", "/app", "-c", "high", "-p", "9"},
	} {
		if _, stderr, code := runCLI(t, svc, send...); code != 0 {
			t.Fatalf("send exit = %d, stderr %q", code, stderr)
		}
	}

	out, stderr, code := runCLI(t, svc, "receive", "-q", "/app", "-q", "/other")
	if code != 0 {
		t.Fatalf("exit = %d, stderr %q", code, stderr)
	}
	if out != "[9]: high\n" {
		t.Fatalf("recv output = %q", out)
	}
	requireContains(t, stderr, "ignoring extra -q queue [/other]")
}

func TestReceiveNonblockingEmpty(t *testing.T) {
	isolateConfig(t)
	svc := testsupport.NewFakeService()
	svc.AddQueue("/app", 10, 100, 0o644)

	out, _, code := runCLI(t, svc, "recv", "-q", "/app", "-b", "no")
	if code != int(syscall.EAGAIN) {
		t.Fatalf("exit = %d, want EAGAIN", code)
	}
	if out != "" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestConfigDefaultsApply(t *testing.T) {
	isolateConfig(t)
	testsupport.WriteConfig(t, testsupport.WithMode("0600"), testsupport.WithOutput("json"))

	svc := testsupport.NewFakeService()
	if _, stderr, code := runCLI(t, svc, "create", "-q", "/app", "-s", "8", "-d", "2"); code != 0 {
		t.Fatalf("create exit = %d, stderr %q", code, stderr)
	}
	q, _ := svc.Queue("/app")
	if q.Mode != 0o600 {
		t.Fatalf("mode = %o, want 600", q.Mode)
	}

	out, _, code := runCLI(t, svc, "info", "-q", "/app")
	if code != 0 {
		t.Fatalf("info exit = %d", code)
	}
	requireContains(t, out, `"queue": "/app"`)

	out, _, _ = runCLI(t, svc, "info", "-q", "/app", "-o", "text")
	requireContains(t, out, "queue: '/app'")
}

func TestInvalidConfigFails(t *testing.T) {
	isolateConfig(t)
	testsupport.WriteConfig(t, testsupport.WithOutput("yaml"))

	svc := testsupport.NewFakeService()
	_, _, code := runCLI(t, svc, "info", "-q", "/app")
	if code != int(syscall.EINVAL) {
		t.Fatalf("exit = %d, want EINVAL", code)
	}
	if len(svc.Calls()) != 0 {
		t.Fatal("expected no service calls")
	}
}

func TestJSONDiagnosticsCarryInvocation(t *testing.T) {
	isolateConfig(t)
	testsupport.WriteConfig(t, testsupport.WithLogging("json", "info"))
	svc := testsupport.NewFakeService()

	_, stderr, code := runCLI(t, svc, "unlink", "-q", "/missing")
	if code != int(syscall.ENOENT) {
		t.Fatalf("exit = %d, want ENOENT", code)
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(stderr)), &record); err != nil {
		t.Fatalf("decode %q: %v", stderr, err)
	}
	if record["queue"] != "/missing" || record["level"] != "error" {
		t.Fatalf("record = %v", record)
	}
	if id, _ := record["invocation"].(string); len(id) != 36 {
		t.Fatalf("invocation = %v, want a uuid", record["invocation"])
	}
}

func TestSendNonblockingDefaultFromConfig(t *testing.T) {
	isolateConfig(t)
	testsupport.WriteConfig(t, testsupport.WithBlock(false), testsupport.WithPriority(3))
	svc := testsupport.NewFakeService()
	svc.AddQueue("/app", 1, 16, 0o644)

	if _, _, code := runCLI(t, svc, "send", "-q", "/app", "-c", "one"); code != 0 {
		t.Fatalf("first send exit = %d", code)
	}
	_, _, code := runCLI(t, svc, "send", "-q", "/app", "-c", "two")
	if code != int(syscall.EAGAIN) {
		t.Fatalf("exit = %d, want EAGAIN", code)
	}
	q, _ := svc.Queue("/app")
	if len(q.Messages) != 1 || q.Messages[0].Priority != 3 {
		t.Fatalf("messages = %+v", q.Messages)
	}
}
