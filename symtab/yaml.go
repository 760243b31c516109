package symtab

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var ErrEmptyLexeme = errors.New("symtab: empty lexeme")

type document struct {
	Symbols []Symbol `yaml:"symbols"`
}

// Load reads a table from a YAML document of the form
//
//	symbols:
//	  - lexeme: foo
//	    owner: Foo
//
// A lexeme listed more than once keeps the last owner given for it. An empty document yields an
// empty table.
func Load(r io.Reader, cfg Config) (*Table, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("symtab: decoding symbols: %w", err)
	}

	t := NewTable(cfg)
	for i, s := range doc.Symbols {
		if s.Lexeme == "" {
			return nil, fmt.Errorf("symbol %d: %w", i, ErrEmptyLexeme)
		}
		t.Put(s.Lexeme, s.Owner)
	}
	return t, nil
}

// Dump writes the table to w in the form Load reads.
func (t *Table) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Symbols: t.Symbols()}); err != nil {
		return err
	}
	return enc.Close()
}
