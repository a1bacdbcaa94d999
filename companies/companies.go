// Package companies reads the list of company names to resolve
package companies

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadNames returns one name per line of r. Lines that are empty or only
// whitespace are skipped; every other line is kept exactly as written,
// duplicates included.
func ReadNames(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read company names: %w", err)
	}

	var names []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		names = append(names, line)
	}
	return names, nil
}

// ReadFile reads company names from the file at path
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	return ReadNames(f)
}
