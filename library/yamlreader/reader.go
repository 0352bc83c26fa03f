package yamlreader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type validator interface {
	Validate() error
}

// NewConfig читает YAML-файл в структуру T. Если *T реализует Validate, результат проверяется.
func NewConfig[T any](path string) (*T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	return Parse[T](raw)
}

func Parse[T any](raw []byte) (*T, error) {
	cfg := new(T)

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	if v, ok := any(cfg).(validator); ok {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("config.Validate: %w", err)
		}
	}

	return cfg, nil
}
