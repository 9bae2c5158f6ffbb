package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/assetview/pkg/errors"
)

// catalogueJSON holds five assets in four folders. Sorted order is
// r1 (Archive), a1, a2 (Clients/Acme), g1 (Clients/Globex), v1 (Vendors).
const catalogueJSON = `[
  {"id": "a1", "folder": "Clients/Acme", "name": "Acme Invoice Q1", "type": "pdf",
   "tags": ["finance", "urgent"], "date_added": "2024-01-15", "addedBy": "Dana",
   "assignedTo": "Lee", "keywords": "billing invoice", "notes": "Sent to accounts"},
  {"id": "v1", "folder": "Vendors", "name": "Paper supplier price list", "type": "xlsx",
   "tags": ["finance"], "date_added": "2024-03-03", "addedBy": "Kim"},
  {"id": "a2", "folder": "Clients/Acme", "name": "acme logo", "type": "image",
   "tags": ["brand"], "date_added": "2024-02-01", "addedBy": "Sam", "assignedTo": "Lee"},
  {"id": "g1", "folder": "Clients/Globex", "name": "Globex Contract", "type": "docx",
   "tags": ["legal"], "date_added": "2023-11-30", "notes": "Renewal due in March"},
  {"id": "r1", "folder": "Archive", "name": "Old brochure", "type": "pdf",
   "tags": ["brand", "legacy"], "keywords": "print"}
]`

// setupCatalogue creates a temp dir holding assets.json, makes it the
// working directory and returns it.
func setupCatalogue(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "assets.json", catalogueJSON)
	t.Chdir(dir)
	return dir
}

// writeFile writes content to dir/name and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// newListOptions returns list options with the flag defaults and a fixed width.
func newListOptions() *listOptions {
	return &listOptions{summary: true, width: 160}
}

// resetFlags restores every flag of cmds to its default after the test, and
// clears the root command's arguments.
func resetFlags(t *testing.T, cmds ...*cobra.Command) {
	t.Helper()
	t.Cleanup(func() {
		for _, c := range append(cmds, rootCmd) {
			c.Flags().VisitAll(func(f *pflag.Flag) {
				if sv, ok := f.Value.(pflag.SliceValue); ok {
					_ = sv.Replace(nil)
				} else {
					_ = f.Value.Set(f.DefValue)
				}
				f.Changed = false
			})
		}
		rootCmd.SetArgs(nil)
	})
}

// runCommand runs the root command with args and returns the error.
func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(append(args, "--skip-build-checks"))
	return ExecuteTest()
}

// requireExitCode asserts err carries the given exit code.
func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, errors.GetExitCode(err), "error: %v", err)
}
