package drivers

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/blue-build/bluebuild/internal/logger"
)

// backend describes how one external tool is probed: the command to look
// for on PATH, how to ask it for its version, and the minimum version the
// build pipeline supports. Tools probed only for presence (skopeo, cosign)
// carry no version query.
type backend struct {
	command     string
	versionArgs []string
	minVersion  *semver.Constraints
}

var (
	skopeoBackend = backend{command: "skopeo"}
	cosignBackend = backend{command: "cosign"}

	dockerBackend = backend{
		command:     "docker",
		versionArgs: []string{"version", "--format", "{{.Server.Version}}"},
		minVersion:  mustConstraints(">= 23"),
	}
	podmanBackend = backend{
		command:     "podman",
		versionArgs: []string{"version", "--format", "{{.Client.Version}}"},
		minVersion:  mustConstraints(">= 4"),
	}
	buildahBackend = backend{
		command:     "buildah",
		versionArgs: []string{"--version"},
		minVersion:  mustConstraints(">= 1.24"),
	}
)

func mustConstraints(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(err)
	}
	return c
}

// exists reports whether the backend's command is on PATH.
func (b backend) exists(p Prober) bool {
	return p.CommandExists(b.command)
}

// supported reports whether the command is present and its installed
// version satisfies the backend's minimum. Any probe failure counts as
// unsupported; resolution moves on to the next candidate.
func (b backend) supported(ctx context.Context, p Prober) bool {
	if !p.CommandExists(b.command) {
		return false
	}
	v, err := p.CommandVersion(ctx, b.command, b.versionArgs...)
	if err != nil {
		logger.Debug().Err(err).Str("command", b.command).Msg("version probe failed")
		return false
	}
	ok := b.minVersion.Check(v)
	logger.Debug().
		Str("command", b.command).
		Str("version", v.String()).
		Bool("supported", ok).
		Msg("version probe")
	return ok
}

// requirement renders the backend name with its minimum version, for
// no-driver diagnostics.
func (b backend) requirement() string {
	if b.minVersion == nil {
		return b.command
	}
	return fmt.Sprintf("%s %s", b.command, b.minVersion)
}
