package fieldaccess

import (
	"iter"
)

// FieldIter walks the declared fields of a record from both ends. It is
// consumed by Next and NextBack; start over with a new call to Fields.
type FieldIter struct {
	owner AnyFieldAccess
	names []string
	front int
	back  int
}

// Fields returns a fresh traversal of the fields of owner in declared order.
// A nil owner has no fields.
func Fields(owner AnyFieldAccess) *FieldIter {
	if isNil(owner) {
		return &FieldIter{}
	}

	names := owner.FieldNames()

	return &FieldIter{owner: owner, names: names, back: len(names)}
}

// Len returns the number of fields not yet produced.
func (it *FieldIter) Len() int {
	return it.back - it.front
}

func (it *FieldIter) Next() (Field, bool) {
	if it.front >= it.back {
		return Field{}, false
	}

	f := FieldOf(it.owner, it.names[it.front])
	it.front++

	return f, true
}

func (it *FieldIter) NextBack() (Field, bool) {
	if it.front >= it.back {
		return Field{}, false
	}

	it.back--

	return FieldOf(it.owner, it.names[it.back]), true
}

// All yields the remaining fields front to back, consuming them.
func (it *FieldIter) All() iter.Seq[Field] {
	return func(yield func(Field) bool) {
		for {
			f, ok := it.Next()
			if !ok || !yield(f) {
				return
			}
		}
	}
}

// Backward yields the remaining fields back to front, consuming them.
func (it *FieldIter) Backward() iter.Seq[Field] {
	return func(yield func(Field) bool) {
		for {
			f, ok := it.NextBack()
			if !ok || !yield(f) {
				return
			}
		}
	}
}

// Names yields the declared position and the name of the remaining fields,
// consuming them.
func (it *FieldIter) Names() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for it.front < it.back {
			i := it.front
			it.front++

			if !yield(i, it.names[i]) {
				return
			}
		}
	}
}
