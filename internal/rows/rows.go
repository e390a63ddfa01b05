// Package rows reads checklist data from YAML documents.
//
// A document is a sequence of rows:
//
//	# rows.yaml
//	- title: Build
//	  value: build
//	  state: true
//	- title: Deploy
//	  value: {env: prod}
//	  className: danger
package rows

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/checklist/internal/checklist"
	"gopkg.in/yaml.v3"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// ErrNotSequence is returned when a document is not a YAML sequence.
var ErrNotSequence = errors.New("rows document must be a sequence")

type row struct {
	Title     string `yaml:"title"`
	Value     any    `yaml:"value"`
	ClassName string `yaml:"className"`
	State     bool   `yaml:"state"`
}

// Decode parses a rows document. Empty input yields no rows.
func Decode(r io.Reader) ([]*checklist.Record, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode rows: %w", err)
	}
	node := &doc
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: %w", node.Line, ErrNotSequence)
	}
	var parsed []row
	if err := node.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}
	records := make([]*checklist.Record, len(parsed))
	for i, p := range parsed {
		records[i] = &checklist.Record{
			Title:     p.Title,
			Value:     p.Value,
			ClassName: p.ClassName,
			State:     p.State,
		}
	}
	return records, nil
}

// Load reads rows from path, or from stdin when path is Stdin.
func Load(path string, stdin io.Reader) ([]*checklist.Record, error) {
	if path == Stdin {
		return Decode(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rows: %w", err)
	}
	defer f.Close()
	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
