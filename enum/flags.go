package enum

import "strings"

// Bit is one named flag bit.
type Bit[T ~uint32] struct {
	Name  string
	Value T
}

// B declares a flag bit for Mask.
func B[T ~uint32](v T, name string) Bit[T] {
	return Bit[T]{Value: v, Name: name}
}

// Flags describes a bitmask type by its declared bits.
type Flags[T ~uint32] struct {
	byName map[string]T
	name   string
	prefix string
	bits   []Bit[T]
	mask   T
}

// Bits declares a flag type whose i-th name is bit 1<<i.
func Bits[T ~uint32](typeName string, names ...string) *Flags[T] {
	bits := make([]Bit[T], len(names))
	for i, n := range names {
		bits[i] = Bit[T]{Value: T(1) << uint(i), Name: n}
	}
	return Mask(typeName, bits...)
}

// Mask declares a flag type from explicit bits.
func Mask[T ~uint32](typeName string, bits ...Bit[T]) *Flags[T] {
	f := &Flags[T]{
		name:   typeName,
		byName: make(map[string]T, len(bits)),
	}
	names := make([]string, 0, len(bits))
	for _, b := range bits {
		f.add(b)
		names = append(names, b.Name)
	}
	f.prefix = commonPrefix(names)
	register(f)
	return f
}

func (f *Flags[T]) add(b Bit[T]) {
	if !SingleBit(b.Value) {
		panic("enum: " + f.name + ": " + b.Name + " is not a single bit")
	}
	if f.mask&b.Value != 0 {
		panic("enum: " + f.name + ": " + b.Name + " redeclares a bit")
	}
	f.bits = append(f.bits, b)
	f.mask |= b.Value
	f.byName[b.Name] = b.Value
}

// Extend adds an extension bit after the core bits. It is only called while
// package variables are initialised.
func (f *Flags[T]) Extend(v T, name string) *Flags[T] {
	f.add(Bit[T]{Value: v, Name: name})
	return f
}

// All returns the union of every declared bit.
func (f *Flags[T]) All() T { return f.mask }

// IsValid reports whether v sets no bit outside the declared mask.
func (f *Flags[T]) IsValid(v T) bool {
	return v&^f.mask == 0
}

// Format joins the names of the set bits with "|". Values with any
// undeclared bit format as Unrecognized.
func (f *Flags[T]) Format(v T) string {
	if !f.IsValid(v) {
		return Unrecognized
	}
	if v == 0 {
		return "0"
	}
	var b strings.Builder
	for _, bit := range f.bits {
		if v&bit.Value == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(bit.Name)
	}
	return b.String()
}

// Parse accepts "|"-separated bit names (full or without the common prefix),
// "0", or a number. Numbers are not checked against the mask.
func (f *Flags[T]) Parse(text string) (T, error) {
	text = strings.TrimSpace(text)
	if n, ok := parseNumber(text); ok && n >= 0 && n == int64(T(n)) {
		return T(n), nil
	}
	var v T
	for _, part := range strings.Split(text, "|") {
		part = strings.TrimSpace(part)
		bit, ok := f.byName[part]
		if !ok {
			bit, ok = f.byName[f.prefix+part]
		}
		if !ok {
			bit, ok = f.byName[f.prefix+strings.ToUpper(part)]
		}
		if !ok {
			return 0, &ParseError{Type: f.name, Text: text}
		}
		v |= bit
	}
	return v, nil
}

// Unmarshal parses text into dst, for encoding.TextUnmarshaler implementations.
func (f *Flags[T]) Unmarshal(dst *T, text []byte) error {
	v, err := f.Parse(string(text))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func (f *Flags[T]) TypeName() string { return f.name }

func (f *Flags[T]) Kind() Kind { return KindFlags }

func (f *Flags[T]) ValidRaw(v int64) bool {
	if v < 0 || v != int64(T(v)) {
		return false
	}
	return f.IsValid(T(v))
}

func (f *Flags[T]) FormatRaw(v int64) string {
	if v < 0 || v != int64(T(v)) {
		return Unrecognized
	}
	return f.Format(T(v))
}

func (f *Flags[T]) ParseRaw(text string) (int64, error) {
	v, err := f.Parse(text)
	return int64(v), err
}

// Members lists the declared bits in declaration order.
func (f *Flags[T]) Members() []Member {
	out := make([]Member, len(f.bits))
	for i, b := range f.bits {
		out[i] = Member{Name: b.Name, Value: int64(b.Value)}
	}
	return out
}
