package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter writes every payload to all underlying writers, unlike
// io.MultiWriter it keeps going past a failing writer and reports the
// combined error at the end.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		writers: writers,
	}
}

func (cw *CombinedWriter) Write(p []byte) (n int, err error) {
	for _, w := range cw.writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		n += written
	}
	return n, err
}
