package truthtable

import "go.creack.net/gentt/ast"

type yamlRow struct {
	Assignment ast.Assignment `yaml:"assignment,omitempty"`
	Result     bool           `yaml:"result"`
}

type yamlTable struct {
	Expression string    `yaml:"expression"`
	Variables  []string  `yaml:"variables"`
	Rows       []yamlRow `yaml:"rows"`
}

// MarshalYAML implements yaml.Marshaler.
func (t *Table) MarshalYAML() (any, error) {
	out := yamlTable{
		Expression: t.title,
		Variables:  t.Vars(),
		Rows:       make([]yamlRow, 0, len(t.results)),
	}
	for row, result := range t.results {
		out.Rows = append(out.Rows, yamlRow{Assignment: t.Assignment(row), Result: result})
	}
	return out, nil
}
