package dict

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// loadInto parses path (format: "WORD[ WEIGHT[ POS]]", '#' comments,
// blank lines ignored) and adds every word as a terminal of d.
func loadInto(d *Dictionary, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("dict: open %q: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		word := fields[0]
		weight := uint64(1)
		pos := ""
		if len(fields) >= 2 {
			w, err := strconv.ParseUint(fields[1], 10, 32)
			if err != nil {
				return fmt.Errorf("dict: %s:%d: bad weight %q: %w", path, lineNo, fields[1], err)
			}
			weight = w
		}
		if len(fields) >= 3 {
			pos = fields[2]
		}
		d.AddTerminal(word, uint32(weight), pos)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("dict: read %q: %w", path, err)
	}
	return nil
}

// loadDictionary builds a fresh Dictionary from one or more source
// files, loaded in order (a later file's terminal entry overrides an
// earlier one's, so overriding dictionaries are listed last).
func loadDictionary(paths []string) (*Dictionary, error) {
	d := NewDictionary()
	for _, p := range paths {
		if err := loadInto(d, p); err != nil {
			return nil, err
		}
	}
	return d, nil
}
