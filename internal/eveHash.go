package internal

import "strings"

// eveHash maps rendered keys to values. Keys keep their insertion order
// so that rendering is stable.
type eveHash struct {
	keys  []string
	pairs map[string]Value
}

func newHash() *eveHash {
	return &eveHash{pairs: make(map[string]Value)}
}

func (h *eveHash) set(key string, value Value) {
	if _, ok := h.pairs[key]; !ok {
		h.keys = append(h.keys, key)
	}
	h.pairs[key] = value
}

// get returns null for missing keys
func (h *eveHash) get(key string) Value {
	if value, ok := h.pairs[key]; ok {
		return value
	}
	return null
}

func (h *eveHash) has(key string) bool {
	_, ok := h.pairs[key]
	return ok
}

func (h *eveHash) Type() string {
	return typeHash
}

func (h *eveHash) Inspect() string {
	out := make([]string, len(h.keys))
	for i, key := range h.keys {
		out[i] = key + ": " + h.pairs[key].Inspect()
	}
	return "{" + strings.Join(out, ",") + "}"
}

func (h *eveHash) equals(other *eveHash) bool {
	if len(h.keys) != len(other.keys) {
		return false
	}
	for key, value := range h.pairs {
		otherValue, ok := other.pairs[key]
		if !ok || !valuesEqual(value, otherValue) {
			return false
		}
	}
	return true
}
