// Package scenario reads YAML scenario files into domain.Scenario values.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/taskboard/internal/domain"
)

// file is the on-disk layout: a list of single-key maps, the key naming the operation.
type file struct {
	Steps []map[string]fields `yaml:"steps"`
}

// fields holds every key any operation accepts.
// Fields are ordered to minimize memory padding.
type fields struct {
	Title       *string   `yaml:"title"`
	Description *string   `yaml:"description"`
	Epic        yaml.Node `yaml:"epic"`
	Ref         string    `yaml:"ref"`
	Kind        string    `yaml:"kind"`
	Start       string    `yaml:"start"`
	Duration    string    `yaml:"duration"`
	Status      string    `yaml:"status"`
	ID          int       `yaml:"id"`
}

// ParseFile reads a scenario from path.
func ParseFile(path string) (*domain.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse reads a scenario from r. Unknown keys are rejected.
func Parse(r io.Reader) (*domain.Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &domain.Scenario{}, nil
		}
		return nil, fmt.Errorf("decode scenario: %w", err)
	}

	sc := &domain.Scenario{Steps: make([]domain.Step, 0, len(f.Steps))}
	for i, raw := range f.Steps {
		index := i + 1
		if len(raw) != 1 {
			return nil, fmt.Errorf("step %d: want exactly one operation, got %d", index, len(raw))
		}
		for op, fl := range raw {
			step, err := convert(domain.StepOp(op), fl)
			if err != nil {
				return nil, fmt.Errorf("step %d (%s): %w", index, op, err)
			}
			step.Index = index
			sc.Steps = append(sc.Steps, step)
		}
	}
	return sc, nil
}

func convert(op domain.StepOp, f fields) (domain.Step, error) {
	step := domain.Step{
		Op:          op,
		Title:       f.Title,
		Description: f.Description,
	}

	if f.Start != "" {
		t, err := domain.ParseTime(f.Start)
		if err != nil {
			return step, err
		}
		step.Start = &t
	}
	if f.Duration != "" {
		d, err := time.ParseDuration(f.Duration)
		if err != nil {
			return step, fmt.Errorf("invalid duration %q: %w", f.Duration, err)
		}
		step.Duration = &d
	}
	if f.Status != "" {
		s, err := domain.ParseStatus(f.Status)
		if err != nil {
			return step, err
		}
		step.Status = &s
	}

	switch op {
	case domain.StepCreate:
		kind := domain.KindTask
		if f.Kind != "" {
			k, err := domain.ParseKind(f.Kind)
			if err != nil {
				return step, err
			}
			kind = k
		}
		step.Kind = kind
		step.Name = f.Ref
		if kind == domain.KindSubtask {
			epic, err := epicRef(f.Epic)
			if err != nil {
				return step, err
			}
			step.Epic = epic
		}

	case domain.StepClear:
		k, err := domain.ParseKind(f.Kind)
		if err != nil {
			return step, err
		}
		step.Kind = k

	case domain.StepStatus, domain.StepUpdate, domain.StepDelete, domain.StepView:
		step.Target = domain.Ref{Name: f.Ref, ID: f.ID}
		if step.Target.IsZero() {
			return step, errors.New("needs ref or id")
		}
		if op == domain.StepStatus && step.Status == nil {
			return step, errors.New("needs status")
		}

	default:
		return step, fmt.Errorf("%w: unknown operation %q", domain.ErrInvalidOperation, op)
	}
	return step, nil
}

// epicRef accepts either a scenario name or a numeric ID.
func epicRef(n yaml.Node) (domain.Ref, error) {
	if n.Kind == 0 || n.Value == "" {
		return domain.Ref{}, errors.New("subtask needs epic")
	}
	if n.Kind != yaml.ScalarNode {
		return domain.Ref{}, fmt.Errorf("epic must be a name or id (line %d)", n.Line)
	}
	if id, err := strconv.Atoi(n.Value); err == nil {
		return domain.Ref{ID: id}, nil
	}
	return domain.Ref{Name: n.Value}, nil
}
