package elf

import (
	"bytes"
	"debug/elf"
	"fmt"
	"os"

	bufra "github.com/avvmoto/buf-readerat"
)

const readBufferSize = 64 * 1024

// File is an ELF file read through a buffered ReaderAt, so that walking
// symbol and string tables does not issue one syscall per entry.
type File struct {
	*elf.File
	fpath string
	fd    *os.File
}

func Open(fpath string) (*File, error) {
	fd, err := os.Open(fpath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", fpath, err)
	}
	ef, err := elf.NewFile(bufra.NewBufReaderAt(fd, readBufferSize))
	if err != nil {
		fd.Close()
		return nil, fmt.Errorf("parse elf %s: %w", fpath, err)
	}
	return &File{File: ef, fpath: fpath, fd: fd}, nil
}

func (f *File) FilePath() string { return f.fpath }

// SectionData returns the contents of the named section, or nil when the
// file has no such section.
func (f *File) SectionData(name string) ([]byte, error) {
	s := f.Section(name)
	if s == nil || s.Type == elf.SHT_NOBITS {
		return nil, nil
	}
	data, err := s.Data()
	if err != nil {
		return nil, fmt.Errorf("read section %s: %w", name, err)
	}
	return data, nil
}

func (f *File) Close() error {
	if f == nil || f.fd == nil {
		return nil
	}
	err := f.fd.Close()
	f.fd = nil
	return err
}

// NewFile parses an ELF image that is already in memory.
func NewFile(name string, data []byte) (*File, error) {
	ef, err := elf.NewFile(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse elf %s: %w", name, err)
	}
	return &File{File: ef, fpath: name}, nil
}
