package graph

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/upi-kavach/kavach/internal/domain"
)

// fileGraph is the on-disk YAML layout of a question graph.
type fileGraph struct {
	Root      string             `yaml:"root"`
	Questions []*domain.Question `yaml:"questions"`
}

// LoadFile reads a question graph from a YAML file and validates it against
// the builtin resolver registry. Deployments use this to ship questionnaire
// updates without a rebuild.
func LoadFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph file: %w", err)
	}

	var fg fileGraph
	if err := yaml.Unmarshal(data, &fg); err != nil {
		return nil, fmt.Errorf("parse graph file %s: %w", path, err)
	}
	if fg.Root == "" {
		return nil, fmt.Errorf("graph file %s: missing root", path)
	}
	if len(fg.Questions) == 0 {
		return nil, fmt.Errorf("graph file %s: no questions", path)
	}

	g, err := New(fg.Root, fg.Questions, BuiltinResolvers())
	if err != nil {
		return nil, fmt.Errorf("graph file %s: %w", path, err)
	}
	return g, nil
}
