package scaffold

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DefaultVersion is written to setup.py when no version is configured.
const DefaultVersion = "0.1.0"

// NormalizeVersion parses version as semver, tolerating a leading "v", and
// returns it in canonical MAJOR.MINOR.PATCH form.
func NormalizeVersion(version string) (string, error) {
	if version == "" {
		return DefaultVersion, nil
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return "", fmt.Errorf("parsing project version %q: %w", version, err)
	}
	return v.String(), nil
}
