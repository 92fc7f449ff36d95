// Package output creates the numbered files that split documents are written to.
package output

import (
	"bufio"
	"fmt"
	"os"
)

// Factory creates the numbered output files {base}-{n}.{ext}. Numbering starts at 0 and
// advances once per file successfully created.
type Factory struct {
	base  string
	ext   string
	count int
	names []string
}

// NewFactory returns a Factory whose first file is {base}-0.{ext}.
func NewFactory(base, ext string) *Factory {
	return &Factory{base: base, ext: ext}
}

// Open creates the next output file, truncating any existing file of that name.
func (f *Factory) Open() (*File, error) {
	name := fmt.Sprintf("%s-%d.%s", f.base, f.count, f.ext)
	fh, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	f.count++
	f.names = append(f.names, name)
	return &File{name: name, f: fh, w: bufio.NewWriter(fh)}, nil
}

// Count is the number of files created so far.
func (f *Factory) Count() int { return f.count }

// Names lists the files created so far, in creation order.
func (f *Factory) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// File is a buffered output document.
type File struct {
	name string
	f    *os.File
	w    *bufio.Writer
}

// Name is the path the file was created at.
func (o *File) Name() string { return o.name }

// WriteLine writes line followed by a single "\n".
func (o *File) WriteLine(line string) error {
	if _, err := o.w.WriteString(line); err != nil {
		return fmt.Errorf("write %s: %w", o.name, err)
	}
	if err := o.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("write %s: %w", o.name, err)
	}
	return nil
}

// Close flushes buffered lines and closes the file.
func (o *File) Close() error {
	ferr := o.w.Flush()
	cerr := o.f.Close()
	if ferr != nil {
		return fmt.Errorf("flush %s: %w", o.name, ferr)
	}
	if cerr != nil {
		return fmt.Errorf("close %s: %w", o.name, cerr)
	}
	return nil
}
