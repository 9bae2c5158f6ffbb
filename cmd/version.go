package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/ajxudir/assetview/pkg/constants"
)

// Build metadata, stamped with -ldflags at release time:
//
//	go build -ldflags="-X github.com/ajxudir/assetview/cmd.Version=v1.0.0"
var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"
	// BuildTime is when the release was built (RFC 3339).
	BuildTime = ""
	// GitCommit is the commit the release was built from.
	GitCommit = ""
	// BuildOS is the GOOS the release targets.
	BuildOS = ""
	// BuildArch is the GOARCH the release targets.
	BuildArch = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Long:  `Show the assetview release, the Go toolchain it was built with and its target platform.`,
	Run:   runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	writeVersion(os.Stdout)
}

// writeVersion prints one "Label: value" line per known build detail.
func writeVersion(w io.Writer) {
	target := buildTarget()
	_, _ = fmt.Fprintf(w, "assetview %s\n", GetVersion())
	_, _ = fmt.Fprintf(w, "  Version: %s\n", GetVersion())
	_, _ = fmt.Fprintf(w, "  Go:      %s\n", runtime.Version())
	_, _ = fmt.Fprintf(w, "  Build:   %s\n", target)
	if target != runtimeTarget() {
		_, _ = fmt.Fprintf(w, "  Runtime: %s\n", runtimeTarget())
	}
	if BuildTime != "" {
		_, _ = fmt.Fprintf(w, "  Date:    %s\n", BuildTime)
	}
	if GitCommit != "" {
		_, _ = fmt.Fprintf(w, "  Git:     %s\n", GitCommit)
	}
}

// GetVersion returns the release tag the binary was stamped with.
//
// Returns:
//   - string: e.g. "v1.0.0", "v1.1.0-rc.1" or "dev"
func GetVersion() string {
	return Version
}

// semverVersion returns Version with the "v" prefix semver requires.
func semverVersion() string {
	if strings.HasPrefix(Version, "v") {
		return Version
	}
	return "v" + Version
}

func runtimeTarget() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}

// buildTarget returns "os/arch" of the release, using the running platform
// for any part that was not stamped.
func buildTarget() string {
	goos, goarch := BuildOS, BuildArch
	if goos == "" {
		goos = runtime.GOOS
	}
	if goarch == "" {
		goarch = runtime.GOARCH
	}
	return goos + "/" + goarch
}

// HasArchMismatch reports whether a stamped release runs on a platform other
// than the one it was built for. Unstamped builds never mismatch.
func HasArchMismatch() bool {
	if BuildOS == "" && BuildArch == "" {
		return false
	}
	return buildTarget() != runtimeTarget()
}

// IsDevBuild reports whether Version is "dev" or not a semantic version.
func IsDevBuild() bool {
	return Version == "dev" || !semver.IsValid(semverVersion())
}

// IsPrerelease reports whether Version carries a prerelease suffix such as
// "-rc.1".
func IsPrerelease() bool {
	v := semverVersion()
	return semver.IsValid(v) && semver.Prerelease(v) != ""
}

// GetArchMismatchWarning returns the platform warning, or "" when the
// release matches the running platform.
func GetArchMismatchWarning() string {
	if !HasArchMismatch() {
		return ""
	}
	return fmt.Sprintf("%s  Architecture mismatch: binary built for %s but running on %s\n"+
		"   Download the release for your platform.\n",
		constants.IconWarn, buildTarget(), runtimeTarget())
}

// GetBuildWarnings returns every build warning that applies, in the order
// platform, development build, prerelease. It is empty for a matching
// stable release.
//
// Returns:
//   - string: Newline-terminated warnings, or ""
func GetBuildWarnings() string {
	var sb strings.Builder
	sb.WriteString(GetArchMismatchWarning())
	if IsDevBuild() {
		sb.WriteString(constants.IconWarn + "  Development build: this binary has no release tag.\n")
	}
	if IsPrerelease() {
		sb.WriteString(constants.IconWarn + "  Prerelease build: " + Version + "\n" +
			"   Catalogue output may change before the stable vX.Y.Z release.\n")
	}
	return sb.String()
}
