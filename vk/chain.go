package vk

import "reflect"

// Extension is a struct that can be linked into another struct's Next chain.
type Extension interface {
	// StructType returns the value of the SType field as set by the caller.
	StructType() StructureType
	// ExpectedType returns the tag the Go type must carry.
	ExpectedType() StructureType
	// NextExtension returns the following struct in the chain.
	NextExtension() Extension
}

// IsNil reports whether e is nil or a typed nil pointer.
func IsNil(e Extension) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Walk calls fn for each struct in the chain starting at head. It stops at
// the first nil link, after 64 links, or when fn returns false.
func Walk(head Extension, fn func(i int, e Extension) bool) {
	for i := 0; i < maxChain && !IsNil(head); i++ {
		if !fn(i, head) {
			return
		}
		head = head.NextExtension()
	}
}

const maxChain = 64

// Find returns the first struct in the chain whose Go type is T.
func Find[T Extension](head Extension) (T, bool) {
	var found T
	ok := false
	Walk(head, func(_ int, e Extension) bool {
		if t, match := e.(T); match {
			found, ok = t, true
			return false
		}
		return true
	})
	return found, ok
}

// BaseInStructure is VkBaseInStructure: a chain link of arbitrary type.
// Clients use it to pass structures this package does not model.
type BaseInStructure struct {
	SType StructureType
	Next  Extension
}

func (s *BaseInStructure) StructType() StructureType { return s.SType }
func (s *BaseInStructure) ExpectedType() StructureType { return s.SType }
func (s *BaseInStructure) NextExtension() Extension { return s.Next }
