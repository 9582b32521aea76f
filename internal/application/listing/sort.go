package listing

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortField criterio de orden con nombre visible.
type SortField[T any] struct {
	Name    string
	Compare func(a, b T) int
}

// SortCycle avanza por una lista fija de criterios y vuelve al inicio.
type SortCycle[T any] struct {
	fields []SortField[T]
	idx    int
}

// NewSortCycle arranca en el primer criterio. Requiere al menos uno.
func NewSortCycle[T any](fields ...SortField[T]) *SortCycle[T] {
	if len(fields) == 0 {
		panic("listing: SortCycle sin criterios")
	}
	return &SortCycle[T]{fields: fields}
}

// Next pasa al siguiente criterio.
func (c *SortCycle[T]) Next() SortField[T] {
	c.idx = (c.idx + 1) % len(c.fields)
	return c.fields[c.idx]
}

func (c *SortCycle[T]) Current() SortField[T] { return c.fields[c.idx] }

// Apply devuelve una copia ordenada (estable) según el criterio actual.
func (c *SortCycle[T]) Apply(items []T) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, c.Current().Compare)
	return out
}

// ByName compara por nombre con colación inglesa (ignora mayúsculas y acentos en primer nivel).
// El collator no es seguro para uso concurrente; el orden se aplica en el hilo de UI.
func ByName[T any](name func(T) string) func(a, b T) int {
	col := collate.New(language.English, collate.Loose)
	return func(a, b T) int {
		return col.CompareString(name(a), name(b))
	}
}

// Descending compara numéricamente de mayor a menor.
func Descending[T any, N cmp.Ordered](key func(T) N) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(key(b), key(a))
	}
}
