package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// CanonMode selects which path components must exist during Canonicalize.
type CanonMode int

const (
	// CanonExisting requires every component to exist.
	CanonExisting CanonMode = iota + 1
	// CanonAllButLast requires every component but the last to exist.
	CanonAllButLast
	// CanonMissing places no existence requirement on any component.
	CanonMissing
)

func (m CanonMode) String() string {
	switch m {
	case CanonExisting:
		return "existing"
	case CanonAllButLast:
		return "all-but-last"
	case CanonMissing:
		return "missing"
	default:
		return fmt.Sprintf("CanonMode(%d)", int(m))
	}
}

// maxSymlinks matches the limit used by filepath.EvalSymlinks.
const maxSymlinks = 255

// Canonicalize returns an absolute path for name with no ".", ".." or
// symlink components. Symlinks are followed in every component, including
// targets of targets. Relative names are taken from the working directory.
//
// Unlike filepath.Clean, ".." is applied after the preceding component has
// been resolved, so "link/.." is the parent of the link's target.
//
// Errors are *fs.PathError values carrying the errno of the failing step,
// e.g. ENOENT, ENOTDIR or ELOOP.
func Canonicalize(name string, mode CanonMode) (string, error) {
	if name == "" {
		return "", pathError(name, syscall.ENOENT)
	}

	abs := name
	if !filepath.IsAbs(abs) {
		wd, err := os.Getwd()
		if err != nil {
			return "", pathError(name, err)
		}
		// Not filepath.Join: cleaning would apply ".." too early.
		abs = wd + string(filepath.Separator) + name
	}

	vol := filepath.VolumeName(abs)
	rest := abs[len(vol):]
	resolved := vol + string(filepath.Separator)
	links := 0

	for rest != "" {
		var comp string
		comp, rest = nextComponent(rest)
		switch comp {
		case "", ".":
			continue
		case "..":
			resolved = filepath.Dir(resolved)
			continue
		}

		next := filepath.Join(resolved, comp)
		fi, err := os.Lstat(next)
		if err != nil {
			if mode == CanonExisting || (mode == CanonAllButLast && hasMore(rest)) {
				return "", pathError(name, unwrapPathError(err))
			}
			resolved = next
			continue
		}

		if fi.Mode()&fs.ModeSymlink != 0 {
			links++
			if links > maxSymlinks {
				return "", pathError(name, syscall.ELOOP)
			}
			target, err := os.Readlink(next)
			if err != nil {
				return "", pathError(name, unwrapPathError(err))
			}
			if filepath.IsAbs(target) {
				tvol := filepath.VolumeName(target)
				resolved = tvol + string(filepath.Separator)
				target = target[len(tvol):]
			}
			rest = target + string(filepath.Separator) + rest
			continue
		}

		if !fi.IsDir() && hasMore(rest) && mode != CanonMissing {
			return "", pathError(name, syscall.ENOTDIR)
		}
		resolved = next
	}

	return resolved, nil
}

func nextComponent(rest string) (comp, remainder string) {
	rest = strings.TrimLeftFunc(rest, isSeparator)
	i := strings.IndexFunc(rest, isSeparator)
	if i < 0 {
		return rest, ""
	}
	return rest[:i], rest[i:]
}

// hasMore reports whether rest names anything beyond separators.
func hasMore(rest string) bool {
	return strings.TrimLeftFunc(rest, isSeparator) != ""
}

func isSeparator(r rune) bool {
	return r < 0x80 && os.IsPathSeparator(uint8(r))
}

func unwrapPathError(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}

func pathError(name string, err error) error {
	return &fs.PathError{Op: "canonicalize", Path: name, Err: err}
}
