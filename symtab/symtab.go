// Package symtab is a symbol table of lexemes and the names that own them, kept in lexeme order.
package symtab

import (
	"strings"
	"sync"

	"github.com/bradenaw/juniper/xslices"

	"github.com/bradenaw/jlist"
)

// Symbol is one entry of a Table.
type Symbol struct {
	Lexeme string `yaml:"lexeme"`
	Owner  string `yaml:"owner"`
}

func compareSymbols(a, b Symbol) int { return strings.Compare(a.Lexeme, b.Lexeme) }

// Config configures a Table.
type Config struct {
	// Descending keeps the table in reverse lexeme order.
	Descending bool `yaml:"descending"`
}

// Table maps each lexeme to its owner. It holds at most one Symbol per lexeme.
//
// Table's methods may be called concurrently.
type Table struct {
	m sync.Mutex

	symbols *jlist.List[Symbol]
}

func NewTable(cfg Config) *Table {
	var opts []jlist.Option
	if cfg.Descending {
		opts = append(opts, jlist.Descending())
	}
	return &Table{
		symbols: jlist.New(jlist.Funcs[Symbol]{
			Compare: compareSymbols,
			Copy:    jlist.Identity[Symbol],
		}, opts...),
	}
}

// Put sets the owner of lexeme, adding it to the table if it isn't there yet.
func (t *Table) Put(lexeme string, owner string) {
	t.m.Lock()
	defer t.m.Unlock()
	e := must(t.symbols.Find(Symbol{Lexeme: lexeme}))
	if e != nil {
		e.Value.Owner = owner
		return
	}
	must(struct{}{}, t.symbols.Insert(jlist.NewElement(Symbol{Lexeme: lexeme, Owner: owner})))
}

// Get returns the owner of lexeme, or false in the second return if lexeme is not in the table.
func (t *Table) Get(lexeme string) (string, bool) {
	t.m.Lock()
	defer t.m.Unlock()
	e := must(t.symbols.Find(Symbol{Lexeme: lexeme}))
	if e == nil {
		return "", false
	}
	return e.Value.Owner, true
}

// Forget removes lexeme from the table.
func (t *Table) Forget(lexeme string) {
	t.m.Lock()
	defer t.m.Unlock()
	e := must(t.symbols.Find(Symbol{Lexeme: lexeme}))
	if e == nil {
		return
	}
	must(struct{}{}, t.symbols.Delete(e))
}

// Reassign gives every lexeme owned by from to to instead, and returns how many it changed.
func (t *Table) Reassign(from string, to string) int {
	t.m.Lock()
	defer t.m.Unlock()
	n := 0
	must(struct{}{}, t.symbols.Visit(
		func(e *jlist.Element[Symbol]) bool {
			e.Value.Owner = to
			n++
			// Order is by lexeme only.
			return false
		},
		func(e *jlist.Element[Symbol]) bool { return e.Value.Owner == from },
	))
	return n
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int {
	t.m.Lock()
	defer t.m.Unlock()
	return must(t.symbols.Count())
}

// Symbols returns the contents of the table in lexeme order.
func (t *Table) Symbols() []Symbol {
	t.m.Lock()
	defer t.m.Unlock()
	return t.symbols.Values()
}

// Lexemes returns the lexemes in the table in order.
func (t *Table) Lexemes() []string {
	return xslices.Map(t.Symbols(), func(s Symbol) string { return s.Lexeme })
}

// The table configures its list itself, so any error from it is a bug in this package.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
