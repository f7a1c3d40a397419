package platform

import "os"

// ReadSymlinkTarget returns the target of a symlink exactly as stored,
// without resolving it. A path that is not a symlink is an error.
func ReadSymlinkTarget(path string) (string, error) {
	return os.Readlink(path)
}
