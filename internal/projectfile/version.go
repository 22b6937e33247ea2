package projectfile

import (
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// semverPattern is the semver.org grammar without anchors, so a version can
// be found anywhere inside a file name
var semverPattern = regexp.MustCompile(`(?P<major>0|[1-9]\d*)\.(?P<minor>0|[1-9]\d*)\.(?P<patch>0|[1-9]\d*)(?:-(?P<prerelease>(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+(?P<buildmetadata>[0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?`)

// ExtractVersion parses the first semantic version embedded in a file name.
// Returns nil when the name carries no version.
func ExtractVersion(name string) *semver.Version {
	match := semverPattern.FindString(name)
	if match == "" {
		return nil
	}

	version, err := semver.StrictNewVersion(match)
	if err != nil {
		return nil
	}
	return version
}
