package rop

import "iter"

// Well-known tag keys.
const (
	TagErrorType             = "ErrorType"
	TagSeverity              = "Severity"
	TagTimestamp             = "Timestamp"
	TagConversionPath        = "ConversionPath"
	TagItemCount             = "ItemCount"
	TagExceptionMessage      = "ExceptionMessage"
	TagExceptionType         = "ExceptionType"
	TagInnerExceptionMessage = "InnerExceptionMessage"
)

// Tag is a single key/value annotation on a Reason.
type Tag struct {
	Key   string
	Value any
}

// Tags is an ordered bag of annotations. Keys are unique; setting an existing
// key replaces its value in place, so the first insertion fixes the order.
type Tags struct {
	items []Tag
}

func (t Tags) Len() int {
	return len(t.items)
}

// Get returns the value stored under key.
func (t Tags) Get(key string) (any, bool) {
	for _, it := range t.items {
		if it.Key == key {
			return it.Value, true
		}
	}
	return nil, false
}

// Keys returns keys in insertion order.
func (t Tags) Keys() []string {
	keys := make([]string, 0, len(t.items))
	for _, it := range t.items {
		keys = append(keys, it.Key)
	}
	return keys
}

// All iterates over the tags in insertion order.
func (t Tags) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, it := range t.items {
			if !yield(it.Key, it.Value) {
				return
			}
		}
	}
}

// Map returns a copy of the tags as a plain map. Order is lost.
func (t Tags) Map() map[string]any {
	if len(t.items) == 0 {
		return nil
	}
	m := make(map[string]any, len(t.items))
	for _, it := range t.items {
		m[it.Key] = it.Value
	}
	return m
}

// Slice returns a copy of the tags in insertion order.
func (t Tags) Slice() []Tag {
	return t.clone().items
}

func (t Tags) clone() Tags {
	if len(t.items) == 0 {
		return Tags{}
	}
	items := make([]Tag, len(t.items))
	copy(items, t.items)
	return Tags{items: items}
}

func (t *Tags) set(key string, value any) {
	if key == "" {
		panic(InvalidArgument("tag key must not be empty"))
	}
	for i := range t.items {
		if t.items[i].Key == key {
			t.items[i].Value = value
			return
		}
	}
	t.items = append(t.items, Tag{Key: key, Value: value})
}
