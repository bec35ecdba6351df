package arr

import (
	"encoding/json"
	"fmt"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
)

var _ containers.Container = (*Array[int])(nil)

// Empty reports whether a has no elements. It is an alias for
// [Array.IsEmpty] that satisfies gods' containers.Container.
func (a *Array[T]) Empty() bool { return a.IsEmpty() }

// Size is an alias for [Array.Len].
func (a *Array[T]) Size() int { return a.Len() }

// Clear removes every element.
func (a *Array[T]) Clear() {
	a.store = make(map[int]T)
	a.n = 0
}

// Values returns the elements as []interface{}, in order.
func (a *Array[T]) Values() []interface{} {
	out := make([]interface{}, 0, a.n)
	a.walk(func(v T, _ int) bool {
		out = append(out, v)
		return true
	})
	return out
}

// SortWith sorts a in place using a gods comparator such as
// utils.IntComparator or utils.StringComparator.
func (a *Array[T]) SortWith(cmp utils.Comparator) {
	values := a.Values()
	utils.Sort(values, cmp)
	for i, v := range values {
		// A nil interface element comes back as nil; the zero T is the same value.
		a.store[Base+i], _ = v.(T)
	}
}

// ToJSON serialises the elements to a JSON array.
func (a *Array[T]) ToJSON() ([]byte, error) {
	return json.Marshal(a.All())
}

// MarshalJSON implements [json.Marshaler]; an Array encodes as a JSON array.
func (a *Array[T]) MarshalJSON() ([]byte, error) { return a.ToJSON() }

// String returns a JSON representation of the array.
// It implements [fmt.Stringer].
func (a *Array[T]) String() string {
	b, err := a.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", a.All())
	}
	return string(b)
}
