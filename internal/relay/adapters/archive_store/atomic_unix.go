//go:build !windows

package archivestore

import (
	"os"

	"github.com/google/renameio/v2"
)

// writeFileAtomic uses renameio: data goes to a temp file in the same
// directory, is synced, then renamed over filename.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(filename, data, perm)
}
