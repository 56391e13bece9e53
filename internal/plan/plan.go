// Package plan reads YAML descriptions of a task forest and replays them
// onto a tasktree.Tree through the ordinary Task operations.
//
// A plan file looks like:
//
//	tasks:
//	  - text: Build
//	    status: completed
//	    logs: [go build ./...]
//	    tasks:
//	      - text: Compile
//	        status: completed
//	  - text: Upload
//	    bars:
//	      - template: ":bar :percent :current/:total"
//	        total: 40
//	        current: 12
package plan

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	apperrors "github.com/ariel-frischer/tasktree/internal/errors"
)

// Plan is the root of a plan file
type Plan struct {
	Tasks []Node `yaml:"tasks" validate:"dive"`
}

// Node describes one task and its subtree
type Node struct {
	Text     string   `yaml:"text" validate:"required"`
	Status   string   `yaml:"status,omitempty" validate:"omitempty,oneof=pending completed complete done failed fail skipped skip"`
	Result   string   `yaml:"result,omitempty"` // text passed to complete, skip or fail
	List     bool     `yaml:"list,omitempty"`
	Logs     []string `yaml:"logs,omitempty"`
	Warnings []string `yaml:"warnings,omitempty"`
	Errors   []string `yaml:"errors,omitempty"`
	Bars     []Bar    `yaml:"bars,omitempty" validate:"dive"`
	Tasks    []Node   `yaml:"tasks,omitempty" validate:"dive"`
}

// Bar describes a progress bar attached to a task
type Bar struct {
	Template string            `yaml:"template" validate:"required"`
	Total    int               `yaml:"total,omitempty" validate:"gte=0"`
	Current  int               `yaml:"current,omitempty" validate:"gte=0"`
	Clear    bool              `yaml:"clear,omitempty"`
	Fields   map[string]string `yaml:"fields,omitempty"`
}

// Parse decodes and validates plan YAML
func Parse(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan yaml: %w", err)
	}

	if err := validator.New().Struct(p); err != nil {
		return nil, fmt.Errorf("validating plan: %w", err)
	}

	return &p, nil
}

// Load reads and parses the plan file at path
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.MissingPlanFile(path)
		}
		return nil, fmt.Errorf("reading plan file: %w", err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, apperrors.InvalidPlan(path, err)
	}
	return p, nil
}

// Count returns the number of tasks in the plan, subtasks included
func (p *Plan) Count() int {
	return countNodes(p.Tasks)
}

func countNodes(nodes []Node) int {
	n := len(nodes)
	for _, node := range nodes {
		n += countNodes(node.Tasks)
	}
	return n
}
