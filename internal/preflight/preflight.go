package preflight

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// Paths locates the queue filesystem and the kernel limit files.
type Paths struct {
	MountDir  string
	LimitsDir string
}

// DefaultPaths returns the Linux locations.
func DefaultPaths() Paths {
	return Paths{
		MountDir:  "/dev/mqueue",
		LimitsDir: "/proc/sys/fs/mqueue",
	}
}

type limit struct {
	file string
	name string
}

var limits = []limit{
	{file: "queues_max", name: "Max queues"},
	{file: "msg_max", name: "Max depth"},
	{file: "msgsize_max", name: "Max message size"},
	{file: "msg_default", name: "Default depth"},
	{file: "msgsize_default", name: "Default message size"},
}

// RunAll executes every check against p.
func RunAll(p Paths) []Result {
	results := []Result{CheckDirectoryAccess("Queue filesystem", p.MountDir)}
	for _, l := range limits {
		results = append(results, CheckLimit(l.name, filepath.Join(p.LimitsDir, l.file)))
	}
	return results
}

// Failed reports whether any result did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return true
		}
	}
	return false
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: not mounted)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckLimit reads one positive integer kernel limit.
func CheckLimit(name, path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("unavailable (%v)", err)}
	}
	value, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil || value <= 0 {
		return Result{Name: name, Detail: fmt.Sprintf("unexpected value %q in %s", strings.TrimSpace(string(data)), path)}
	}
	return Result{Name: name, Passed: true, Detail: strconv.FormatInt(value, 10)}
}
