package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// itemsDoc is the YAML shape accepted by --items: a list of items plus an
// optional header shown when --header is not given.
//
//	header: Pick your favourite colour
//	items:
//	  - red
//	  - green
type itemsDoc struct {
	Header string   `yaml:"header"`
	Items  []string `yaml:"items"`
}

// loadItems gathers the selectable items from, in order of precedence:
// a YAML items file, positional arguments, then newline-delimited stdin.
func loadItems(args []string, path string, stdin io.Reader) (items []string, header string, err error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("reading items file: %w", err)
		}
		var doc itemsDoc
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, "", fmt.Errorf("parsing items file %s: %w", path, err)
		}
		if len(doc.Items) == 0 {
			return nil, "", fmt.Errorf("items file %s holds no items", path)
		}
		return doc.Items, doc.Header, nil
	}

	if len(args) > 0 {
		return args, "", nil
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		items = append(items, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, "", fmt.Errorf("reading stdin: %w", err)
	}
	if len(items) == 0 {
		return nil, "", errors.New("no items: pass them as arguments, --items, or stdin")
	}
	return items, "", nil
}
