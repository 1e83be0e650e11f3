package drivers

import (
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

// Platform selects the target platform for a build. The set is closed:
// native (whatever the host is) plus the two supported cross targets.
type Platform string

const (
	PlatformNative     Platform = "native"
	PlatformLinuxAmd64 Platform = "linux/amd64"
	PlatformLinuxArm64 Platform = "linux/arm64"
)

// String returns the display form ("native", "linux/amd64", "linux/arm64").
// The zero value displays as native, which is also the flag default.
func (p Platform) String() string {
	if p == "" {
		return string(PlatformNative)
	}
	return string(p)
}

// Arch returns the short architecture string for the platform.
func (p Platform) Arch() string {
	switch p {
	case PlatformLinuxAmd64:
		return "amd64"
	case PlatformLinuxArm64:
		return "arm64"
	default:
		return "native"
	}
}

// OCI returns the OCI platform descriptor for the cross targets.
// Native has no fixed descriptor; ok is false and the build uses the host
// platform.
func (p Platform) OCI() (spec ocispec.Platform, ok bool) {
	switch p {
	case PlatformLinuxAmd64:
		return ocispec.Platform{OS: "linux", Architecture: "amd64"}, true
	case PlatformLinuxArm64:
		return ocispec.Platform{OS: "linux", Architecture: "arm64"}, true
	default:
		return ocispec.Platform{}, false
	}
}

// Set implements pflag.Value.
func (p *Platform) Set(v string) error {
	return setEnum((*string)(p), v, "native", "linux/amd64", "linux/arm64")
}

// Type implements pflag.Value.
func (p *Platform) Type() string { return "platform" }
