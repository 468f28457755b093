// Package dictionary loads the external text sources named by a FileRef
// atom. Lines are read once, eagerly, into an in-memory ordered list;
// subsequent enumeration touches no disk (spec §5).
package dictionary

import (
	"bufio"
	"fmt"
	"os"
)

// Load reads path and returns its non-empty lines in file order. An empty
// result (zero usable lines) is reported as an error, same as an unreadable
// path — both are FileError conditions at the caller (spec §7).
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("no usable (non-empty) lines in %s", path)
	}

	return lines, nil
}
