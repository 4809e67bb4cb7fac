package enum

import "strings"

// Scalar describes an enumerated type with a contiguous core range and
// optional extension values declared outside it.
type Scalar[T ~int32] struct {
	ext      map[T]string
	byName   map[string]T
	name     string
	prefix   string
	core     []string
	extOrder []T
	begin    T
}

// Range declares a scalar type whose core members are begin, begin+1, ...
// named in order by names.
func Range[T ~int32](typeName string, begin T, names ...string) *Scalar[T] {
	s := &Scalar[T]{
		name:   typeName,
		begin:  begin,
		core:   names,
		ext:    make(map[T]string),
		byName: make(map[string]T, len(names)),
		prefix: commonPrefix(names),
	}
	for i, n := range names {
		s.byName[n] = begin + T(i)
	}
	register(s)
	return s
}

// Extend adds an enumerator declared outside the core range. It is only
// called while package variables are initialised.
func (s *Scalar[T]) Extend(v T, name string) *Scalar[T] {
	if s.inCore(v) {
		panic("enum: " + s.name + ": extension value " + name + " overlaps the core range")
	}
	s.ext[v] = name
	s.extOrder = append(s.extOrder, v)
	s.byName[name] = v
	return s
}

func (s *Scalar[T]) inCore(v T) bool {
	return int64(v) >= int64(s.begin) && int64(v) < int64(s.begin)+int64(len(s.core))
}

// IsValid reports whether v is a declared member of the type.
func (s *Scalar[T]) IsValid(v T) bool {
	if s.inCore(v) {
		return true
	}
	_, ok := s.ext[v]
	return ok
}

// Format returns the declared name of v, or Unrecognized.
func (s *Scalar[T]) Format(v T) string {
	if s.inCore(v) {
		return s.core[int64(v)-int64(s.begin)]
	}
	if n, ok := s.ext[v]; ok {
		return n
	}
	return Unrecognized
}

// Parse accepts a declared name, the name without the type's common prefix,
// or a decimal or 0x-prefixed number. Numbers are not range checked so that
// callers can express illegal values on purpose.
func (s *Scalar[T]) Parse(text string) (T, error) {
	text = strings.TrimSpace(text)
	if v, ok := s.byName[text]; ok {
		return v, nil
	}
	if v, ok := s.byName[s.prefix+text]; ok {
		return v, nil
	}
	if v, ok := s.byName[s.prefix+strings.ToUpper(text)]; ok {
		return v, nil
	}
	if n, ok := parseNumber(text); ok && n == int64(T(n)) {
		return T(n), nil
	}
	return 0, &ParseError{Type: s.name, Text: text}
}

// Unmarshal parses text into dst, for encoding.TextUnmarshaler implementations.
func (s *Scalar[T]) Unmarshal(dst *T, text []byte) error {
	v, err := s.Parse(string(text))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// First returns the first member of the core range.
func (s *Scalar[T]) First() T { return s.begin }

// Last returns the last member of the core range.
func (s *Scalar[T]) Last() T { return s.begin + T(len(s.core)-1) }

func (s *Scalar[T]) TypeName() string { return s.name }

func (s *Scalar[T]) Kind() Kind { return KindScalar }

func (s *Scalar[T]) ValidRaw(v int64) bool {
	if v != int64(T(v)) {
		return false
	}
	return s.IsValid(T(v))
}

func (s *Scalar[T]) FormatRaw(v int64) string {
	if v != int64(T(v)) {
		return Unrecognized
	}
	return s.Format(T(v))
}

func (s *Scalar[T]) ParseRaw(text string) (int64, error) {
	v, err := s.Parse(text)
	return int64(v), err
}

// Members lists the core range followed by extension values in declaration order.
func (s *Scalar[T]) Members() []Member {
	out := make([]Member, 0, len(s.core)+len(s.extOrder))
	for i, n := range s.core {
		out = append(out, Member{Name: n, Value: int64(s.begin) + int64(i)})
	}
	for _, v := range s.extOrder {
		out = append(out, Member{Name: s.ext[v], Value: int64(v)})
	}
	return out
}
