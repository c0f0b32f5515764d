package file

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// Sink writes a document to a file. The content is written to a temporary file in the
// same directory first and renamed over the target, so readers never see a partial file.
type Sink struct {
	fs       afero.Fs
	filepath string
}

// NewSink creates a Sink writing fpath on fs.
func NewSink(fs afero.Fs, fpath string) *Sink {
	return &Sink{
		fs:       fs,
		filepath: filepath.Clean(fpath),
	}
}

// Path returns the cleaned target path.
func (s *Sink) Path() string {
	return s.filepath
}

// Write calls write with a writer for the new file content and replaces the target
// once write returns without error. Missing parent directories are created.
func (s *Sink) Write(write func(w io.Writer) error) error {
	dir := filepath.Dir(s.filepath)

	err := s.fs.MkdirAll(dir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating directory %q: %w", dir, err)
	}

	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(s.filepath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}

	tmpName := tmp.Name()

	err = s.writeTemp(tmp, write)
	if err != nil {
		_ = s.fs.Remove(tmpName)

		return err
	}

	err = s.fs.Chmod(tmpName, filePerm)
	if err != nil {
		_ = s.fs.Remove(tmpName)

		return fmt.Errorf("setting permissions of %q: %w", tmpName, err)
	}

	err = s.fs.Rename(tmpName, s.filepath)
	if err != nil {
		_ = s.fs.Remove(tmpName)

		return fmt.Errorf("replacing file %q: %w", s.filepath, err)
	}

	return nil
}

func (s *Sink) writeTemp(tmp afero.File, write func(w io.Writer) error) error {
	buffered := bufio.NewWriter(tmp)

	err := write(buffered)
	if err != nil {
		_ = tmp.Close()

		return fmt.Errorf("writing file %q: %w", s.filepath, err)
	}

	err = buffered.Flush()
	if err != nil {
		_ = tmp.Close()

		return fmt.Errorf("flushing file %q: %w", s.filepath, err)
	}

	err = tmp.Close()
	if err != nil {
		return fmt.Errorf("closing file %q: %w", s.filepath, err)
	}

	return nil
}
