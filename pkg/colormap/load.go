package colormap

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Parse reads a colormap definition: one "R G B [A]" line per stop,
// channel values 0-255, blank lines and #-comments ignored. Stops are
// evenly spaced across [0, 1] in file order.
func Parse(r io.Reader, name string) (Linear, error) {
	var stops []color.RGBA

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 && len(fields) != 4 {
			return Linear{}, fmt.Errorf("colormap %s: line %d: want 3 or 4 fields, got %d", name, lineNo, len(fields))
		}

		var ch [4]uint8
		ch[3] = 255
		for i, f := range fields {
			v, err := strconv.ParseUint(f, 10, 8)
			if err != nil {
				return Linear{}, fmt.Errorf("colormap %s: line %d: %w", name, lineNo, err)
			}
			ch[i] = uint8(v)
		}
		stops = append(stops, color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]})
	}
	if err := scanner.Err(); err != nil {
		return Linear{}, fmt.Errorf("colormap %s: %w", name, err)
	}
	if len(stops) < 2 {
		return Linear{}, fmt.Errorf("colormap %s: need at least two stops, got %d", name, len(stops))
	}

	return NewLinear(name, stops), nil
}

// Load reads a colormap definition file and registers the result. The
// colormap is named after the file's base name. Files ending in .zst
// are decompressed first.
func Load(path string) (Linear, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Linear{}, fmt.Errorf("colormap: %w", err)
	}

	name := filepath.Base(path)
	if strings.HasSuffix(name, ".zst") {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return Linear{}, fmt.Errorf("colormap: %w", err)
		}
		defer dec.Close()
		data, err = dec.DecodeAll(data, nil)
		if err != nil {
			return Linear{}, fmt.Errorf("colormap %s: zstd decompress failed: %w", name, err)
		}
		name = strings.TrimSuffix(name, ".zst")
	}
	name = strings.TrimSuffix(name, filepath.Ext(name))

	cm, err := Parse(strings.NewReader(string(data)), name)
	if err != nil {
		return Linear{}, err
	}

	Register(cm)
	return cm, nil
}

// LoadDir loads every .cmap and .cmap.zst file in dir, registering
// each. Missing directories are not an error; a server can always run
// with the built-in maps.
func LoadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("colormap: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if !strings.HasSuffix(n, ".cmap") && !strings.HasSuffix(n, ".cmap.zst") {
			continue
		}
		cm, err := Load(filepath.Join(dir, n))
		if err != nil {
			return names, err
		}
		names = append(names, cm.Name())
	}
	return names, nil
}
