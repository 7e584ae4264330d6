package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/eggfriedrice24/tcad"
	"github.com/eggfriedrice24/tcad/pattern"
)

// Exporter writes pieces in one output format.
type Exporter interface {
	Export(w io.Writer, pieces []pattern.Piece) error
}

// ExporterFunc adapts a function to the [Exporter] interface.
type ExporterFunc func(w io.Writer, pieces []pattern.Piece) error

func (f ExporterFunc) Export(w io.Writer, pieces []pattern.Piece) error {
	return f(w, pieces)
}

// Factory creates an exporter configured by opts.
type Factory func(opts Options) Exporter

var (
	registryMu sync.RWMutex
	formats    = make(map[string]Factory)
)

// Register makes a format available under name. It panics if factory is nil
// or if a format with the same name is already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("export: Register factory is nil")
	}
	if _, dup := formats[name]; dup {
		panic("export: Register called twice for " + name)
	}
	formats[name] = factory
}

// Unregister removes a format. It is a no-op for unknown names.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(formats, name)
}

// New returns an exporter for the named format.
func New(name string, opts ...Option) (Exporter, error) {
	registryMu.RLock()
	factory, ok := formats[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("export: unknown format %q", name)
	}
	return factory(NewOptions(opts...)), nil
}

// Formats returns the registered format names in sorted order.
func Formats() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a format with the given name exists.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := formats[name]
	return ok
}

// Save writes pieces to the file at path in the named format, replacing any
// existing file. Failures wrap [tcad.ErrExport].
func Save(format, path string, pieces []pattern.Piece, opts ...Option) error {
	exp, err := New(format, opts...)
	if err != nil {
		return fmt.Errorf("%w: %w", tcad.ErrExport, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", tcad.ErrExport, err)
	}
	bw := bufio.NewWriter(f)
	if err := exp.Export(bw, pieces); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("%w: %s: %w", tcad.ErrExport, format, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("%w: %w", tcad.ErrExport, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", tcad.ErrExport, err)
	}
	tcad.Logger().Info("export: saved", "format", format, "path", path, "pieces", len(pieces))
	return nil
}

func init() {
	Register("svg", func(o Options) Exporter {
		return ExporterFunc(func(w io.Writer, pieces []pattern.Piece) error {
			return writeSVG(w, pieces, o)
		})
	})
	Register("dxf", func(o Options) Exporter {
		return ExporterFunc(func(w io.Writer, pieces []pattern.Piece) error {
			return writeDXF(w, pieces, o)
		})
	})
	Register("pdf", func(o Options) Exporter {
		return ExporterFunc(func(w io.Writer, pieces []pattern.Piece) error {
			doc, err := buildPDF(pieces, o)
			if err != nil {
				return err
			}
			return doc.Output(w)
		})
	})
	Register("png", func(o Options) Exporter {
		return ExporterFunc(func(w io.Writer, pieces []pattern.Piece) error {
			return writePNG(w, pieces, o)
		})
	})
}
