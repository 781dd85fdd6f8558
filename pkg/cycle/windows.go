package cycle

import (
	"strings"
	"sync"
)

// Default sampling windows per colormap name. Sequential maps that
// fade to near-white keep their light end out of cycles; dark-to-dark
// maps use the full domain and are not listed.
var defaultWindows = map[string]Window{
	"autumn":  {Start: 0, Stop: 0.85},
	"blues":   {Start: 0.2, Stop: 1},
	"copper":  {Start: 0, Stop: 0.95},
	"greens":  {Start: 0.2, Stop: 1},
	"greys":   {Start: 0.2, Stop: 0.95},
	"oranges": {Start: 0.2, Stop: 1},
	"ylgnbu":  {Start: 0.15, Stop: 1},
	"ylorbr":  {Start: 0.15, Stop: 0.95},
}

var windowsMu sync.RWMutex

// DefaultWindow returns a copy of the default sampling window for the
// named colormap, or the full [0, 1] window for unlisted names. The
// name match is case-insensitive.
func DefaultWindow(name string) Window {
	windowsMu.RLock()
	defer windowsMu.RUnlock()
	if w, ok := defaultWindows[strings.ToLower(strings.TrimSpace(name))]; ok {
		return w
	}
	return Window{Start: 0, Stop: 1}
}

// SetDefaultWindow replaces the default sampling window for the named
// colormap. Servers call this once at startup when the configuration
// overrides a window; after that the table is read-only.
func SetDefaultWindow(name string, w Window) error {
	if err := w.validate(); err != nil {
		return err
	}
	windowsMu.Lock()
	defer windowsMu.Unlock()
	defaultWindows[strings.ToLower(strings.TrimSpace(name))] = w
	return nil
}
