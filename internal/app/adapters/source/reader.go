package source

import (
	"bufio"
	"context"
	"io"
	"os"
)

// maxLineLength bounds a single line. IRCv3 allows 8191 bytes of tags plus
// 512 bytes of message, logs sometimes carry more.
const maxLineLength = 1 << 20

// Reader emits the non-empty lines of r with "\n" or "\r\n" removed.
type Reader struct {
	name string
	r    io.Reader
}

func NewReader(name string, r io.Reader) *Reader {
	return &Reader{name: name, r: r}
}

func (r *Reader) Name() string {
	return r.name
}

func (r *Reader) Lines(ctx context.Context, out chan<- string) error {
	scanner := bufio.NewScanner(r.r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		if err := emit(ctx, out, line); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// File reads lines from a log file.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Name() string {
	return f.path
}

func (f *File) Lines(ctx context.Context, out chan<- string) error {
	file, err := os.Open(f.path)
	if err != nil {
		return err
	}
	defer file.Close()

	return NewReader(f.path, file).Lines(ctx, out)
}
