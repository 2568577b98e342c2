package tabular

import (
	"io"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes r as a YAML mapping with its keys in row order.
func (r Row) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range r {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key},
			f.Value.yamlNode(),
		)
	}
	return n, nil
}

func writeYAML(w io.Writer, t Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records(t)); err != nil {
		return err
	}
	return enc.Close()
}
