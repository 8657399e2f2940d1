// Package orderedmap provides a generic map which remembers insertion order.
package orderedmap

// OrderedMap stores key-value pairs and iterates over them in insertion order.
// Overwriting a key keeps its original position.
type OrderedMap[K comparable, V any] struct {
	index map[K]int
	keys  []K
	vals  []V
}

// Iterator walks an OrderedMap from its oldest entry onwards
type Iterator[K comparable, V any] struct {
	m   *OrderedMap[K, V]
	pos int
	// Key of the current entry
	Key K
	// Value of the current entry
	Value V
}

// NewOrderedMap creates a new OrderedMap of type K
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		index: map[K]int{},
	}
}

// Set will store a key-value pair. If the key already exists,
// its value is replaced in place.
func (o *OrderedMap[K, V]) Set(key K, val V) {
	if i, ok := o.index[key]; ok {
		o.vals[i] = val
		return
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, val)
}

// Get will return the value associated with the key.
// If the key doesn't exist, the second return value will be false.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	if o == nil {
		return *new(V), false
	}
	i, ok := o.index[key]
	if !ok {
		return *new(V), false
	}
	return o.vals[i], true
}

// Has reports whether key is present
func (o *OrderedMap[K, V]) Has(key K) bool {
	_, ok := o.Get(key)
	return ok
}

// Count returns the count of keys in OrderedMap
func (o *OrderedMap[K, V]) Count() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns a copy of the keys in insertion order
func (o *OrderedMap[K, V]) Keys() []K {
	if o == nil {
		return nil
	}
	out := make([]K, len(o.keys))
	copy(out, o.keys)
	return out
}

// Front returns an iterator positioned on the oldest entry or nil when the map is empty
func (o *OrderedMap[K, V]) Front() *Iterator[K, V] {
	if o.Count() == 0 {
		return nil
	}
	it := &Iterator[K, V]{m: o}
	it.load()
	return it
}

// Next advances the iterator. It returns nil once the last entry has been visited.
func (it *Iterator[K, V]) Next() *Iterator[K, V] {
	it.pos++
	if it.pos >= len(it.m.keys) {
		return nil
	}
	it.load()
	return it
}

func (it *Iterator[K, V]) load() {
	it.Key = it.m.keys[it.pos]
	it.Value = it.m.vals[it.pos]
}
