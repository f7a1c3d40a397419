package cli

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// displayVersion normalises a semver build version to "vX.Y.Z[-pre]" and
// passes anything else (e.g. "dev") through unchanged.
func displayVersion(version string) string {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return version
	}
	return "v" + v.String()
}

func versionString(version, commit, date string) string {
	if version == "" {
		version = "dev"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", displayVersion(version), commit, date)
}
