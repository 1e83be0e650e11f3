package config

import (
	"fmt"
	"os"
)

// defaultConfigTemplate is written by WriteDefault. Every setting is
// commented out so the file documents the available knobs without
// pinning any driver choice.
const defaultConfigTemplate = `# bluebuild configuration.
#
# Driver overrides. When a driver is unset it is detected automatically
# by probing the host in priority order.
drivers:
  # inspect: skopeo | podman | docker
  # build: buildah | podman | docker
  # signing: cosign | sigstore
  # run: podman | docker
  # ci: local | gitlab | github

signing:
  # Sign with the sigstore library instead of the cosign binary.
  sigstore: false

# logging:
#   file_enabled: true
#   max_size_mb: 50
#   max_age_days: 7
#   max_backups: 3
`

// WriteDefault writes a commented default configuration to path. It
// refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
