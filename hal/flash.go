/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package hal

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// StagedFlash writes a firmware image into a staging file and installs it
// with an atomic rename once the declared byte count was fully written and
// verified. A short or oversized write never reaches the install path.
type StagedFlash struct {
	Fs          afero.Fs
	StagingPath string
	InstallPath string

	// Capacity is the size of the staging area. Zero means unbounded
	// (development on a regular filesystem).
	Capacity int64

	declared int64
	file     afero.File
	written  int64
}

type countingWriter struct {
	f *StagedFlash
}

func (w *countingWriter) Write(p []byte) (int, error) {
	if w.f.written+int64(len(p)) > w.f.declared {
		return 0, errors.New("write beyond declared image size")
	}

	n, err := w.f.file.Write(p)
	w.f.written += int64(n)
	return n, err
}

func (f *StagedFlash) Begin(size int64) (io.Writer, error) {
	if size <= 0 {
		return nil, errors.New("image size must be declared")
	}

	if f.Capacity > 0 && size > f.Capacity {
		return nil, errors.Errorf("image size %d exceeds staging capacity %d", size, f.Capacity)
	}

	file, err := f.Fs.OpenFile(f.StagingPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open staging area")
	}

	f.declared = size
	f.file = file
	f.written = 0

	return &countingWriter{f: f}, nil
}

func (f *StagedFlash) Commit() error {
	if f.file == nil {
		return errors.New("no staged image")
	}

	err := f.file.Close()
	f.file = nil
	if err != nil {
		return errors.Wrap(err, "failed to finalize staged image")
	}

	if f.written != f.declared {
		f.Fs.Remove(f.StagingPath)
		return errors.Errorf("staged image incomplete: %d of %d bytes", f.written, f.declared)
	}

	stat, err := f.Fs.Stat(f.StagingPath)
	if err != nil {
		return errors.Wrap(err, "failed to verify staged image")
	}

	if stat.Size() != f.declared {
		f.Fs.Remove(f.StagingPath)
		return errors.Errorf("staged image size mismatch: %d of %d bytes", stat.Size(), f.declared)
	}

	return f.Fs.Rename(f.StagingPath, f.InstallPath)
}

func (f *StagedFlash) Abort() {
	if f.file != nil {
		f.file.Close()
		f.file = nil
	}

	f.Fs.Remove(f.StagingPath)
}
