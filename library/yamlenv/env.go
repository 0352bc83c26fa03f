package yamlenv

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var placeholder = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-(.*))?\}$`)

// Env — значение конфигурации, которое можно переопределить переменной окружения.
//
// В YAML записывается либо обычным значением, либо ссылкой на переменную:
//
//	port: 3000
//	conn: ${PG_CONN}
//	base_url: ${BACKEND_URL:-http://localhost:8000/api/v1}
type Env[T any] struct {
	Value T
	Name  string
}

// New wraps a literal value.
func New[T any](v T) *Env[T] {
	return &Env[T]{Value: v}
}

// Get returns the resolved value, or the zero value for a missing key.
func (e *Env[T]) Get() T {
	if e == nil {
		var zero T
		return zero
	}

	return e.Value
}

// GetOr returns def when the key is missing or resolved to the zero value.
func (e *Env[T]) GetOr(def T) T {
	if e == nil {
		return def
	}

	var zero T
	if any(e.Value) == any(zero) {
		return def
	}

	return e.Value
}

func (e *Env[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("yamlenv: line %d: expected scalar value", node.Line)
	}

	m := placeholder.FindStringSubmatch(strings.TrimSpace(node.Value))
	if m == nil {
		return node.Decode(&e.Value)
	}

	e.Name = m[1]

	raw, ok := os.LookupEnv(e.Name)
	if !ok {
		raw = m[2]
	}

	if raw == "" {
		var zero T
		e.Value = zero
		return nil
	}

	resolved := yaml.Node{Kind: yaml.ScalarNode, Value: raw, Line: node.Line, Column: node.Column}
	if err := resolved.Decode(&e.Value); err != nil {
		return fmt.Errorf("yamlenv: %s: %w", e.Name, err)
	}

	return nil
}
