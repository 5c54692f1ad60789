package normalize

import (
	"gopkg.in/yaml.v3"
)

// NormalizeYAML decodes a YAML definition document and routes the decoded
// value through the same classification as JSON input. Operator tooling
// tends to write compact definitions in YAML; the detection order and all
// downstream behavior are identical.
func (n *Normalizer) NormalizeYAML(data []byte) (*Result, error) {
	var value interface{}
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, &ParseError{Reason: "definition is not valid YAML", Input: string(data), Err: err}
	}
	return n.Normalize(value)
}
