package symbols

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/hlmerscher/simplelang-go/limits"
)

// Entry binds a variable name to its memory address.
type Entry struct {
	Name    string `yaml:"name" toml:"name"`
	Address int    `yaml:"address" toml:"address"`
}

// Table assigns addresses to variable names on first reference. An address,
// once given, never changes for the lifetime of the table.
type Table struct {
	addresses map[string]int
	next      int
	max       int
}

func NewTable(lim limits.Limits) *Table {
	return &Table{
		addresses: map[string]int{},
		next:      lim.BaseAddress,
		max:       lim.MaxSymbols,
	}
}

// Resolve returns the address of name, allocating the next free one if name
// has not been seen yet.
func (st *Table) Resolve(name string) (int, error) {
	if addr, ok := st.addresses[name]; ok {
		return addr, nil
	}
	if len(st.addresses) >= st.max {
		return 0, &limits.CapacityError{Resource: "symbols", Limit: st.max}
	}

	addr := st.next
	st.addresses[name] = addr
	st.next++

	return addr, nil
}

func (st *Table) Lookup(name string) (int, bool) {
	addr, ok := st.addresses[name]
	return addr, ok
}

func (st *Table) Len() int {
	return len(st.addresses)
}

// Entries lists every symbol ordered by address.
func (st *Table) Entries() []Entry {
	names := maps.Keys(st.addresses)
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{Name: name, Address: st.addresses[name]})
	}
	slices.SortFunc(entries, func(a, b Entry) bool {
		return a.Address < b.Address
	})
	return entries
}
