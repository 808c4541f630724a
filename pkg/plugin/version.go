package plugin

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrIncompatible is returned for a plugin speaking an unsupported protocol.
var ErrIncompatible = errors.New("incompatible plugin protocol")

// Version is a parsed MAJOR.MINOR.PATCH protocol version.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses a MAJOR.MINOR.PATCH string.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(strings.TrimPrefix(strings.TrimSpace(s), "v"), ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version %q (expected MAJOR.MINOR.PATCH)", s)
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("invalid version %q", s)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String implements fmt.Stringer.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// CheckCompatible reports whether a plugin built against protocol version
// pluginVersion can be used by this host. Major versions must match; newer
// minor and patch versions are accepted. An empty version is treated as
// compatible since plugins may omit it.
func CheckCompatible(pluginVersion string) error {
	if pluginVersion == "" {
		return nil
	}

	pv, err := ParseVersion(pluginVersion)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIncompatible, err)
	}
	host, _ := ParseVersion(ProtocolVersion)

	if pv.Major != host.Major {
		return fmt.Errorf("%w: plugin speaks %s, host requires %d.x.x", ErrIncompatible, pv, host.Major)
	}
	return nil
}
