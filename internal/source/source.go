// Package source resolves where the input stream comes from and which base name and
// extension the split documents are written under.
package source

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// StdinName is the virtual file name used for naming outputs when reading standard input.
const StdinName = "stdin.yaml"

// Source is an opened input stream together with the naming parts derived from it.
type Source struct {
	Reader io.Reader
	Name   string
	Base   string
	Ext    string

	file *os.File
}

// Open selects stdin when arg is "-", otherwise it opens arg for reading.
func Open(arg string, stdin io.Reader) (*Source, error) {
	if arg == "-" {
		base, ext := Basename(StdinName)
		return &Source{Reader: stdin, Name: StdinName, Base: base, Ext: ext}, nil
	}

	f, err := os.Open(arg)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open input: %w", err)
	}
	if fi.IsDir() {
		f.Close()
		return nil, fmt.Errorf("open input: %s is a directory", arg)
	}

	base, ext := Basename(arg)
	return &Source{Reader: f, Name: arg, Base: base, Ext: ext, file: f}, nil
}

// Close releases the input file. It is a no-op for stdin.
func (s *Source) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}

// Basename splits path into the name without its extension and the extension itself.
// The extension is whatever follows the last "." of the final path element; leading
// directories stay attached to the base. A leading dot does not start an extension, so
// ".hidden" keeps its whole name as the base where a plain split at the last dot would
// leave the base empty.
//
//	foo                  -> foo, ""
//	foo.bar.yaml         -> foo.bar, yaml
//	dir/foo.bar.baz.yaml -> dir/foo.bar.baz, yaml
func Basename(path string) (string, string) {
	dir, file := "", path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		dir, file = path[:i+1], path[i+1:]
	}
	i := strings.LastIndex(file, ".")
	if i <= 0 {
		return dir + file, ""
	}
	return dir + file[:i], file[i+1:]
}
