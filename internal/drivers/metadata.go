package drivers

import (
	"github.com/opencontainers/go-digest"
)

// VersionLabel is the OCI label carrying the version of the tooling that
// produced an image.
const VersionLabel = "io.blue-build.version"

// ImageMetadata is the label-and-digest view of an inspected image,
// decoded from inspect output. Wire field names are PascalCase.
type ImageMetadata struct {
	Labels map[string]any `json:"Labels"`
	Digest digest.Digest  `json:"Digest"`
}

// Version extracts the major version from the image's version label.
// A missing label, a non-string value, and an unparsable version all
// yield ok == false; none of them is an error.
func (m ImageMetadata) Version() (major uint64, ok bool) {
	raw, ok := m.Labels[VersionLabel]
	if !ok {
		return 0, false
	}
	s, ok := raw.(string)
	if !ok {
		return 0, false
	}
	v, err := parseVersion(s)
	if err != nil {
		return 0, false
	}
	return v.Major(), true
}
