// Package cache persists the last public IP address applied to
// every record, so unchanged addresses are not sent again.
package cache

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
)

type File struct {
	path      string
	readFile  func(name string) ([]byte, error)
	writeFile func(name string, data []byte, perm fs.FileMode) error
}

func New(path string) *File {
	return &File{
		path:      path,
		readFile:  os.ReadFile,
		writeFile: os.WriteFile,
	}
}

// Load returns the cached IP address and true, or an empty string
// and false if the file is missing, unreadable or blank.
func (f *File) Load() (ip string, present bool) {
	b, err := f.readFile(f.path)
	if err != nil {
		return "", false
	}
	ip = strings.TrimSpace(string(b))
	return ip, ip != ""
}

// Changed returns true if the cache is absent or if the ip
// given differs from the cached one.
func (f *File) Changed(ip string) bool {
	cached, present := f.Load()
	return !present || cached != ip
}

func (f *File) Save(ip string) (err error) {
	const perm fs.FileMode = 0o644
	err = f.writeFile(f.path, []byte(ip+"\n"), perm)
	if err != nil {
		return fmt.Errorf("writing cache file: %w", err)
	}
	return nil
}
