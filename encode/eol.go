package encode

import (
	"runtime"
	"sync"
)

var (
	eolMu      sync.RWMutex
	defaultEol = platformEol()
)

func platformEol() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// SetDefaultEol changes the line ending used by all subsequent writes
// that do not set one explicitly. Only "\n" and "\r\n" are accepted.
func SetDefaultEol(eol string) error {
	if eol != "\n" && eol != "\r\n" {
		return ErrBadEol
	}
	eolMu.Lock()
	defaultEol = eol
	eolMu.Unlock()
	return nil
}

// DefaultEol returns the process-wide line ending.
func DefaultEol() string {
	eolMu.RLock()
	defer eolMu.RUnlock()
	return defaultEol
}
