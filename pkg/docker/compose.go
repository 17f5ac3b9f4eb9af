package docker

import (
	"fmt"

	"sigs.k8s.io/yaml"
)

// ValidateCompose checks that generated compose content is well-formed
// YAML with a top-level mapping. It does not validate compose semantics.
func ValidateCompose(content string) error {
	var doc map[string]interface{}
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return fmt.Errorf("generated compose is not valid YAML: %w", err)
	}
	if len(doc) == 0 {
		return fmt.Errorf("generated compose is empty")
	}
	return nil
}
