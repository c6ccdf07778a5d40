// Package params reads the DynHost records file.
package params

import (
	"os"
)

type Reader struct {
	readFile func(filename string) ([]byte, error)
}

func NewReader() *Reader {
	return &Reader{
		readFile: os.ReadFile,
	}
}
