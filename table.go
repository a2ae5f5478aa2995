package cssorder

import (
	"errors"
	"fmt"

	"github.com/elliotchance/orderedmap/v3"
)

// Table construction errors
var (
	ErrEmptyGroupName = errors.New("empty group name")
	ErrDuplicateGroup = errors.New("duplicate group")
)

// GroupDef declares one group of the table.
type GroupDef struct {
	Name       string
	Properties List
}

// Group is a named bucket of properties that must appear contiguously,
// in bucket order, within a declaration block.
type Group struct {
	Name       string
	Properties []string
}

// Table is an insertion-ordered, read-only mapping from group name to its
// properties. The position of a group defines its position in the output.
type Table struct {
	groups *orderedmap.OrderedMap[string, Group]
}

// BuildTable builds a Table from defs, keeping their order.
func BuildTable(defs ...GroupDef) (*Table, error) {
	groups := orderedmap.NewOrderedMap[string, Group]()

	for _, def := range defs {
		if def.Name == "" {
			return nil, ErrEmptyGroupName
		}
		if _, exists := groups.Get(def.Name); exists {
			return nil, fmt.Errorf("%w %q", ErrDuplicateGroup, def.Name)
		}
		groups.Set(def.Name, Group{
			Name:       def.Name,
			Properties: Of(def.Properties),
		})
	}

	return &Table{groups: groups}, nil
}

// Len returns the number of groups.
func (t *Table) Len() int {
	return t.groups.Len()
}

// Names returns group names in table order.
func (t *Table) Names() []string {
	names := make([]string, 0, t.groups.Len())
	for el := t.groups.Front(); el != nil; el = el.Next() {
		names = append(names, el.Key)
	}
	return names
}

// Group returns a copy of the named group.
func (t *Table) Group(name string) (Group, bool) {
	g, ok := t.groups.Get(name)
	if !ok {
		return Group{}, false
	}
	return g.clone(), true
}

// Groups returns copies of all groups in table order.
func (t *Table) Groups() []Group {
	groups := make([]Group, 0, t.groups.Len())
	for el := t.groups.Front(); el != nil; el = el.Next() {
		groups = append(groups, el.Value.clone())
	}
	return groups
}

// Properties returns every property of every group in table order.
// Duplicates are kept.
func (t *Table) Properties() []string {
	var props []string
	for el := t.groups.Front(); el != nil; el = el.Next() {
		props = append(props, el.Value.Properties...)
	}
	return props
}

func (g Group) clone() Group {
	props := make([]string, len(g.Properties))
	copy(props, g.Properties)
	return Group{Name: g.Name, Properties: props}
}
