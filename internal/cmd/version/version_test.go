package version

import (
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		want    string
	}{
		{
			name:    "version with commit",
			version: "1.2.3",
			commit:  "abc1234",
			want:    "bluebuild version 1.2.3 (abc1234)\n",
		},
		{
			name:    "strips v prefix",
			version: "v1.2.3",
			commit:  "",
			want:    "bluebuild version 1.2.3\n",
		},
		{
			name:    "dev build",
			version: "dev",
			commit:  "none",
			want:    "bluebuild version dev (none)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.version, tt.commit); got != tt.want {
				t.Errorf("Format(%q, %q) = %q, want %q", tt.version, tt.commit, got, tt.want)
			}
		})
	}
}
