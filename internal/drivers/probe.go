package drivers

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// DefaultProbeTimeout bounds each external version query so a wedged
// engine binary cannot hang resolution. A timed-out probe counts as
// "tool not usable", not as an error.
const DefaultProbeTimeout = 5 * time.Second

// ExecCommandFunc creates the exec.Cmd used for version probes.
// Injected in tests to avoid spawning real engine binaries.
type ExecCommandFunc func(ctx context.Context, name string, arg ...string) *exec.Cmd

// Prober answers the two questions resolution is allowed to ask about a
// backend: is its command on PATH, and what version is installed.
type Prober interface {
	CommandExists(name string) bool
	CommandVersion(ctx context.Context, name string, arg ...string) (*semver.Version, error)
}

// execProber probes the host PATH with real process execution.
type execProber struct {
	timeout     time.Duration
	lookPath    func(file string) (string, error)
	execCommand ExecCommandFunc
}

// NewProber returns a Prober backed by the host PATH. A non-positive
// timeout falls back to DefaultProbeTimeout.
func NewProber(timeout time.Duration) Prober {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &execProber{
		timeout:     timeout,
		lookPath:    exec.LookPath,
		execCommand: exec.CommandContext,
	}
}

func (p *execProber) CommandExists(name string) bool {
	_, err := p.lookPath(name)
	return err == nil
}

func (p *execProber) CommandVersion(ctx context.Context, name string, arg ...string) (*semver.Version, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	out, err := p.execCommand(ctx, name, arg...).Output()
	if err != nil {
		return nil, fmt.Errorf("%s version query: %w", name, err)
	}

	v, err := parseVersion(string(out))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

// parseVersion extracts a semantic version from version-query output.
// Output shapes vary ("24.0.5", "buildah version 1.24.0 (image-spec ...)"),
// so the first whitespace token on the first line that parses leniently
// wins. Lenient means partial versions like "v2" or "1.4" are accepted.
func parseVersion(out string) (*semver.Version, error) {
	line, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	for _, field := range strings.Fields(line) {
		if v, err := semver.NewVersion(field); err == nil {
			return v, nil
		}
	}
	return nil, fmt.Errorf("no parsable version in %q", line)
}
