// Package drivers selects the concrete container-tooling backends an image
// build runs with: which engine builds images, which inspects them, which
// signs them, which executes containers, and which CI context the build is
// running under. Selection probes the host once per category and memoizes
// the result for the life of the process.
package drivers

import (
	"fmt"
	"strings"
)

// InspectDriver identifies the backend used to inspect remote images.
type InspectDriver string

const (
	InspectDriverSkopeo InspectDriver = "skopeo"
	InspectDriverPodman InspectDriver = "podman"
	InspectDriverDocker InspectDriver = "docker"
)

func (d InspectDriver) String() string { return string(d) }

// Set implements pflag.Value.
func (d *InspectDriver) Set(v string) error {
	return setEnum((*string)(d), v, "skopeo", "podman", "docker")
}

// Type implements pflag.Value.
func (d *InspectDriver) Type() string { return "inspect-driver" }

// BuildDriver identifies the backend used to build images.
type BuildDriver string

const (
	BuildDriverBuildah BuildDriver = "buildah"
	BuildDriverPodman  BuildDriver = "podman"
	BuildDriverDocker  BuildDriver = "docker"
)

func (d BuildDriver) String() string { return string(d) }

// Set implements pflag.Value.
func (d *BuildDriver) Set(v string) error {
	return setEnum((*string)(d), v, "buildah", "podman", "docker")
}

// Type implements pflag.Value.
func (d *BuildDriver) Type() string { return "build-driver" }

// SigningDriver identifies the backend used to sign images.
type SigningDriver string

const (
	SigningDriverCosign   SigningDriver = "cosign"
	SigningDriverSigstore SigningDriver = "sigstore"
)

func (d SigningDriver) String() string { return string(d) }

// Set implements pflag.Value.
func (d *SigningDriver) Set(v string) error {
	return setEnum((*string)(d), v, "cosign", "sigstore")
}

// Type implements pflag.Value.
func (d *SigningDriver) Type() string { return "signing-driver" }

// RunDriver identifies the backend used to run containers.
type RunDriver string

const (
	RunDriverPodman RunDriver = "podman"
	RunDriverDocker RunDriver = "docker"
)

func (d RunDriver) String() string { return string(d) }

// Set implements pflag.Value.
func (d *RunDriver) Set(v string) error {
	return setEnum((*string)(d), v, "podman", "docker")
}

// Type implements pflag.Value.
func (d *RunDriver) Type() string { return "run-driver" }

// CIDriver identifies the CI context a build is running under.
type CIDriver string

const (
	CIDriverLocal  CIDriver = "local"
	CIDriverGitlab CIDriver = "gitlab"
	CIDriverGithub CIDriver = "github"
)

func (d CIDriver) String() string { return string(d) }

// Set implements pflag.Value.
func (d *CIDriver) Set(v string) error {
	return setEnum((*string)(d), v, "local", "gitlab", "github")
}

// Type implements pflag.Value.
func (d *CIDriver) Type() string { return "ci-driver" }

// setEnum assigns v to target if it is one of the allowed tokens.
// Matching is case-insensitive; the stored value is the lowercase token.
func setEnum(target *string, v string, allowed ...string) error {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, a := range allowed {
		if v == a {
			*target = v
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", strings.Join(allowed, ", "))
}
