package ir

// Entry is one resolved declaration paired with its table key.
type Entry struct {
	Declaration string
	Target      Target
}

// Table memoizes resolved declarations in first-insertion order. That
// order is a valid dependency order: a declaration is only inserted
// after everything it references has been inserted.
type Table struct {
	targets map[string]Target
	order   []string
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{targets: make(map[string]Target)}
}

// Insert records the target for decl and returns it. Declarations are
// unique by schema contract; inserting the same key twice is a
// programming error and panics.
func (t *Table) Insert(decl string, target Target) Target {
	if _, dup := t.targets[decl]; dup {
		panic("ir: duplicate table insertion for " + decl)
	}
	t.targets[decl] = target
	t.order = append(t.order, decl)
	return target
}

// Lookup returns the memoized target for decl, if any.
func (t *Table) Lookup(decl string) (Target, bool) {
	target, ok := t.targets[decl]
	return target, ok
}

// Remove drops decl from the table, preserving the relative order of
// the remaining entries. Removing an absent key is a no-op.
func (t *Table) Remove(decl string) {
	if _, ok := t.targets[decl]; !ok {
		return
	}
	delete(t.targets, decl)
	for i, d := range t.order {
		if d == decl {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Len reports the number of live entries.
func (t *Table) Len() int { return len(t.targets) }

// Entries snapshots the table in insertion order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, decl := range t.order {
		entries = append(entries, Entry{Declaration: decl, Target: t.targets[decl]})
	}
	return entries
}
