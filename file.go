package ezjson

import (
	"log/slog"
	"os"
)

// File variants read or write the whole file and then behave like their
// in-memory counterparts. An I/O failure is reported as CodeFileIO with the
// message "file opening failed"; the os error is kept as Cause.

// ReadFile reads the object document at path into v.
func ReadFile(path string, v Describer, opts ...ReadOpt) error {
	data, err := readFile(path, opts)
	if err != nil {
		return err
	}
	return Read(data, v, opts...)
}

// ReadObjectsFile reads the root array of objects at path into *v.
func ReadObjectsFile[T any, PT DescriberPtr[T]](path string, v *[]T, opts ...ReadOpt) error {
	data, err := readFile(path, opts)
	if err != nil {
		return err
	}
	return ReadObjects[T, PT](data, v, opts...)
}

// ReadValuesFile reads the root array of primitive values at path into *v.
func ReadValuesFile[T Value](path string, v *[]T, opts ...ReadOpt) error {
	data, err := readFile(path, opts)
	if err != nil {
		return err
	}
	return ReadValues(data, v, opts...)
}

// ReadEnumsFile reads the root array of enum names at path into *v.
func ReadEnumsFile[E Enumerable](path string, v *[]E, n E, name func(E) string, opts ...ReadOpt) error {
	data, err := readFile(path, opts)
	if err != nil {
		return err
	}
	return ReadEnums(data, v, n, name, opts...)
}

// WriteFile prints v and writes it to path, truncating any existing file.
func WriteFile(path string, v Describer, indent Indent) error {
	out, err := Write(v, indent)
	if err != nil {
		return err
	}
	return writeFile(path, out)
}

// WriteObjectsFile prints v as a root array of objects to path.
func WriteObjectsFile[T any, PT DescriberPtr[T]](path string, v []T, indent Indent) error {
	out, err := WriteObjects[T, PT](v, indent)
	if err != nil {
		return err
	}
	return writeFile(path, out)
}

// WriteValuesFile prints v as a root array of primitive values to path.
func WriteValuesFile[T Value](path string, v []T, indent Indent) error {
	out, err := WriteValues(v, indent)
	if err != nil {
		return err
	}
	return writeFile(path, out)
}

// WriteEnumsFile prints v as a root array of enum names to path.
func WriteEnumsFile[E Enumerable](path string, v []E, name func(E) string, indent Indent) error {
	out, err := WriteEnums(v, name, indent)
	if err != nil {
		return err
	}
	return writeFile(path, out)
}

func readFile(path string, opts []ReadOpt) ([]byte, error) {
	lg := slog.New(slog.DiscardHandler)
	if len(opts) > 0 && opts[len(opts)-1].Logger != nil {
		lg = opts[len(opts)-1].Logger
	}
	data, err := os.ReadFile(path)
	if err != nil {
		lg.Debug("read failed", "path", path, "error", err)
		return nil, &Error{Code: CodeFileIO, Message: msgFileOpen, Cause: err}
	}
	lg.Debug("read file", "path", path, "bytes", len(data))
	return data, nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &Error{Code: CodeFileIO, Message: msgFileOpen, Cause: err}
	}
	return nil
}
