package enum

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Unrecognized is the printable form of every value outside its type's legal set.
const Unrecognized = "unrecognized enumerator"

// Kind distinguishes scalar enumerations from bit-flag types.
type Kind uint8

const (
	KindScalar Kind = iota
	KindFlags
)

func (k Kind) String() string {
	if k == KindFlags {
		return "flags"
	}
	return "enum"
}

// Value is implemented by every enumerated and flag type of the API model.
type Value interface {
	IsValid() bool
	String() string
	EnumType() string
}

// Member is one declared enumerator or flag bit.
type Member struct {
	Name  string
	Value int64
}

// Descriptor is the type-erased view of a declared enumeration.
type Descriptor interface {
	TypeName() string
	Kind() Kind
	ValidRaw(v int64) bool
	FormatRaw(v int64) string
	ParseRaw(text string) (int64, error)
	Members() []Member
}

// ParseError is returned when text names no member of a type.
type ParseError struct {
	Type string
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: unknown value %q", e.Type, e.Text)
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Descriptor)
)

func register(d Descriptor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[d.TypeName()]; dup {
		panic("enum: duplicate declaration of " + d.TypeName())
	}
	registry[d.TypeName()] = d
}

// Lookup returns the descriptor registered under typeName.
func Lookup(typeName string) (Descriptor, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	d, ok := registry[typeName]
	return d, ok
}

// All returns every registered descriptor ordered by type name.
func All() []Descriptor {
	registryMu.RLock()
	out := make([]Descriptor, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	registryMu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].TypeName() < out[j].TypeName() })
	return out
}

// SingleBit reports whether exactly one bit of v is set.
func SingleBit[T ~uint32](v T) bool {
	return v != 0 && v&(v-1) == 0
}

// commonPrefix returns the longest prefix ending in '_' shared by all names.
// It lets callers write "R8G8B8A8_UNORM" for "VK_FORMAT_R8G8B8A8_UNORM".
func commonPrefix(names []string) string {
	if len(names) < 2 {
		if len(names) == 1 {
			if i := strings.LastIndexByte(names[0], '_'); i > 0 {
				return names[0][:i+1]
			}
		}
		return ""
	}
	prefix := names[0]
	for _, n := range names[1:] {
		for !strings.HasPrefix(n, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	if i := strings.LastIndexByte(prefix, '_'); i >= 0 {
		return prefix[:i+1]
	}
	return ""
}

func parseNumber(text string) (int64, bool) {
	v, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
