package app

import (
	"io"
	"log"
	"os"
)

// OpenLog returns a logger writing to path, or one discarding everything
// when path is empty. Terminal frontends own the screen, so log output
// never goes to stderr. The returned close function is never nil.
func OpenLog(path string) (*log.Logger, func() error, error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return log.New(f, "", log.LstdFlags|log.Lmicroseconds), f.Close, nil
}
