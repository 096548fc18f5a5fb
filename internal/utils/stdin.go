package utils

import (
	"io"
	"os"
)

// ReadStdin reads everything piped to standard input. It returns nil
// without blocking when stdin is a terminal or an empty regular file.
func ReadStdin() ([]byte, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return nil, err
	}

	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return nil, nil
	}
	if stat.Mode().IsRegular() && stat.Size() == 0 {
		return nil, nil
	}

	return io.ReadAll(os.Stdin)
}
