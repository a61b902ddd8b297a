package sqlstore

import (
	"fmt"
	"reflect"

	"github.com/teamgo/teamgo/internal/datastore"
	"github.com/teamgo/teamgo/internal/domain"
)

// Table maps one entity type to a relational table. The first column is the primary key.
type Table struct {
	Name    string
	Columns []string
	// Values returns the column values of the entity, in Columns order.
	Values func(domain.Entity) []any
	// Targets returns the scan destinations of the entity, in Columns order.
	Targets func(domain.Entity) []any
}

func (t Table) key() string {
	return t.Columns[0]
}

// Schema holds the table mapping of every entity type a Store can persist.
type Schema struct {
	tables map[reflect.Type]Table
}

// NewSchema creates an empty Schema.
func NewSchema() *Schema {
	return &Schema{tables: map[reflect.Type]Table{}}
}

// Register maps entity type E to a table.
func Register[E any, T datastore.EntityPtr[E]](s *Schema, name string, columns []string, values func(T) []any, targets func(T) []any) {
	s.tables[reflect.TypeFor[T]()] = Table{
		Name:    name,
		Columns: columns,
		Values: func(e domain.Entity) []any {
			return values(e.(T))
		},
		Targets: func(e domain.Entity) []any {
			return targets(e.(T))
		},
	}
}

// Table returns the table mapped to the entity's type.
func (s *Schema) Table(e domain.Entity) (Table, error) {
	t, ok := s.tables[reflect.TypeOf(e)]
	if !ok {
		return Table{}, fmt.Errorf("sqlstore: no table registered for %T", e)
	}
	return t, nil
}
