package search

// Op is a comparison operator inside a Compare node
type Op string

const (
	// OpEq is exact equality
	OpEq Op = "="
	// OpGt is strictly-greater-than
	OpGt Op = ">"
	// OpGte is greater-or-equal
	OpGte Op = ">="
	// OpLte is less-or-equal
	OpLte Op = "<="
)

// Predicate is one node of the filter tree. The tree is built by Build
// from a Filters value and rendered to SQL by Compile, so predicate
// construction stays testable without a database.
type Predicate interface {
	isPredicate()
}

// And matches rows satisfying every child. An empty And matches everything.
type And struct {
	Children []Predicate
}

// Or matches rows satisfying at least one child
type Or struct {
	Children []Predicate
}

// Compare matches rows where column op value holds
type Compare struct {
	Column string
	Op     Op
	Value  interface{}
}

// Contains matches rows where column contains the substring,
// case-insensitively
type Contains struct {
	Column string
	Substr string
}

// Null matches rows where the column is NULL
type Null struct {
	Column string
}

func (And) isPredicate()     {}
func (Or) isPredicate()      {}
func (Compare) isPredicate() {}
func (Contains) isPredicate() {}
func (Null) isPredicate()    {}
