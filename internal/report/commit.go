package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	permFile = 0o644
	permDir  = 0o755
)

// Artifact is one output file and the function that renders it.
type Artifact struct {
	Path   string
	Encode func(w io.Writer) error
}

type staged struct {
	tmp  string
	dest string
	// backup is a hard link to the previous destination file, if any.
	backup string
}

// Commit writes every artifact or none of them. Target directories are
// created as needed. Each artifact is rendered into a temporary file in its
// destination directory; if any rendering fails all temporary files are
// removed and existing destinations are left untouched. Once everything is
// staged, existing destination files are linked to backups and the
// temporary files are renamed into place. If a rename fails, destinations
// already replaced are restored from their backups, or removed when they
// did not exist before.
func Commit(artifacts ...Artifact) error {
	var done []staged

	cleanup := func() {
		for _, s := range done {
			_ = os.Remove(s.tmp)

			if s.backup != "" {
				_ = os.Remove(s.backup)
			}
		}
	}

	for _, a := range artifacts {
		s, err := stage(a)
		if err != nil {
			cleanup()
			return fmt.Errorf("failed to stage %s: %w", a.Path, err)
		}

		done = append(done, s)
	}

	for i := range done {
		backup, err := backupOf(done[i])
		if err != nil {
			cleanup()
			return fmt.Errorf("failed to back up %s: %w", done[i].dest, err)
		}

		done[i].backup = backup
	}

	for i, s := range done {
		if err := os.Rename(s.tmp, s.dest); err != nil {
			restore(done[:i])
			cleanup()

			return fmt.Errorf("failed to replace %s: %w", s.dest, err)
		}
	}

	cleanup()

	return nil
}

// backupOf links an existing regular destination file next to its staged
// replacement. Missing destinations and non-regular files get no backup.
func backupOf(s staged) (string, error) {
	info, err := os.Lstat(s.dest)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}

	if err != nil {
		return "", err
	}

	if !info.Mode().IsRegular() {
		return "", nil
	}

	backup := s.tmp + ".bak"
	if err := os.Link(s.dest, backup); err != nil {
		return "", err
	}

	return backup, nil
}

// restore undoes the renames of replaced.
func restore(replaced []staged) {
	for _, s := range replaced {
		if s.backup == "" {
			_ = os.Remove(s.dest)
			continue
		}

		_ = os.Rename(s.backup, s.dest)
	}
}

func stage(a Artifact) (staged, error) {
	if a.Path == "" {
		return staged{}, errors.New("empty artifact path")
	}

	if a.Encode == nil {
		return staged{}, errors.New("no encoder")
	}

	dir := filepath.Dir(a.Path)
	if err := os.MkdirAll(dir, permDir); err != nil {
		return staged{}, err
	}

	tmp, err := os.CreateTemp(dir, ".reqcover-*")
	if err != nil {
		return staged{}, err
	}

	tmpPath := tmp.Name()
	fail := func(err error) (staged, error) {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)

		return staged{}, err
	}

	bw := bufio.NewWriter(tmp)
	if err := a.Encode(bw); err != nil {
		return fail(err)
	}

	if err := bw.Flush(); err != nil {
		return fail(err)
	}

	if err := tmp.Sync(); err != nil {
		return fail(err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return staged{}, err
	}

	_ = os.Chmod(tmpPath, permFile)

	return staged{tmp: tmpPath, dest: a.Path}, nil
}
