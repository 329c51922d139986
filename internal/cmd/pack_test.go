package cmd

import (
	"testing"

	"github.com/githubify/githubify/archive"
)

func TestEffectiveSplitSize(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		flag       string
		expected   string
	}{
		{
			name:       "flag wins over config",
			configured: "95m",
			flag:       "1g",
			expected:   "1g",
		},
		{
			name:       "config used without flag",
			configured: "95m",
			flag:       "",
			expected:   "95m",
		},
		{
			name:       "default when nothing set",
			configured: "",
			flag:       "",
			expected:   archive.DefaultSplitSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := effectiveSplitSize(tt.configured, tt.flag)
			if result != tt.expected {
				t.Errorf("effectiveSplitSize(%q, %q) = %q, expected %q",
					tt.configured, tt.flag, result, tt.expected)
			}
		})
	}
}
