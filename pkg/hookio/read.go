package hookio

import (
	"io"
	"os"
)

// ReadFileCapped reads at most maxContentBytes from a file. It is the
// default FileReader for file events.
func ReadFileCapped(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxContentBytes))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
