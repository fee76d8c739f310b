package frame

import (
	"iter"
	"slices"
)

// Symbol is an attribute key.
type Symbol string

const (
	AttrNames    Symbol = "names"
	AttrDim      Symbol = "dim"
	AttrDimNames Symbol = "dimnames"
	AttrClass    Symbol = "class"
	AttrRowNames Symbol = "row.names"
)

// AttributeEntry is one (key, value) pair of an AttributeList.
type AttributeEntry struct {
	Key   Symbol
	Value *Value
}

// AttributeList is an ordered sequence of AttributeEntry values.
//
// An AttributeList is never modified in place: With and Without return new lists,
// so a list reachable from one container can be handed to another without aliasing writes.
// Entry payloads are shared by reference.
type AttributeList struct {
	entries []AttributeEntry
}

// NewAttributeList builds a list from entries in the given order.
// Entries with a nil Value are skipped.
func NewAttributeList(entries ...AttributeEntry) AttributeList {
	l := AttributeList{}
	for _, e := range entries {
		l = l.With(e.Key, e.Value)
	}

	return l
}

func (l AttributeList) Len() int {
	return len(l.entries)
}

func (l AttributeList) IsEmpty() bool {
	return len(l.entries) == 0
}

// At returns the i-th entry.
func (l AttributeList) At(i int) AttributeEntry {
	return l.entries[i]
}

// Get returns the value of the first entry with key.
func (l AttributeList) Get(key Symbol) (*Value, bool) {
	if i := l.indexOf(key); i >= 0 {
		return l.entries[i].Value, true
	}

	return nil, false
}

func (l AttributeList) Has(key Symbol) bool {
	return l.indexOf(key) >= 0
}

// Keys returns the keys in list order.
func (l AttributeList) Keys() []Symbol {
	keys := make([]Symbol, len(l.entries))
	for i, e := range l.entries {
		keys[i] = e.Key
	}

	return keys
}

// Entries returns a copy of the entries in list order.
func (l AttributeList) Entries() []AttributeEntry {
	entries := make([]AttributeEntry, len(l.entries))
	copy(entries, l.entries)

	return entries
}

// All iterates over the entries in list order.
func (l AttributeList) All() iter.Seq2[Symbol, *Value] {
	return func(yield func(Symbol, *Value) bool) {
		for _, e := range l.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Copy duplicates the list structure: a fresh sequence with the same keys,
// the same order, and the same Value references.
// It returns false and an empty list when there is nothing to copy.
func (l AttributeList) Copy() (AttributeList, bool) {
	if len(l.entries) == 0 {
		return AttributeList{}, false
	}

	entries := make([]AttributeEntry, 0, len(l.entries))
	for _, e := range l.entries {
		entries = append(entries, AttributeEntry{Key: e.Key, Value: e.Value})
	}

	return AttributeList{entries: entries}, true
}

// With returns a new list where the first entry for key holds val, keeping its position,
// or with (key, val) appended when key is absent. A nil val behaves like Without(key).
func (l AttributeList) With(key Symbol, val *Value) AttributeList {
	if val == nil {
		return l.Without(key)
	}

	i := l.indexOf(key)
	if i < 0 {
		entries := make([]AttributeEntry, len(l.entries), len(l.entries)+1)
		copy(entries, l.entries)

		return AttributeList{entries: append(entries, AttributeEntry{Key: key, Value: val})}
	}

	entries := l.Entries()
	entries[i].Value = val

	return AttributeList{entries: entries}
}

// Without returns a new list with every entry for the given keys removed.
// The receiver is returned unchanged when none of the keys is present.
func (l AttributeList) Without(keys ...Symbol) AttributeList {
	if !slices.ContainsFunc(keys, l.Has) {
		return l
	}

	entries := make([]AttributeEntry, 0, len(l.entries))
	for _, e := range l.entries {
		if !slices.Contains(keys, e.Key) {
			entries = append(entries, e)
		}
	}

	return AttributeList{entries: entries}
}

func (l AttributeList) indexOf(key Symbol) int {
	return slices.IndexFunc(l.entries, func(e AttributeEntry) bool {
		return e.Key == key
	})
}

func declaredClasses(l AttributeList) []string {
	klass, ok := l.Get(AttrClass)
	if !ok {
		return nil
	}

	classes, _ := klass.Payload().([]string)
	if len(classes) == 0 {
		return nil
	}

	return classes
}

// normalizeClass turns an empty character class vector into a removal.
func normalizeClass(val *Value) *Value {
	if val.Kind() == KindCharacter && val.Len() == 0 {
		return nil
	}

	return val
}
