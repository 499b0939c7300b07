package model

// Kind tags the variant of a nominal Type. Go has no class hierarchy to
// downcast through, so the interface below plus a Kind() method stands in
// for the source's subclassing + runtime-downcast design (spec.md §9).
type Kind uint8

const (
	KindClass Kind = iota
	KindStruct
	KindEnum
	KindProtocol
	KindProtocolComposition
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindStruct:
		return "struct"
	case KindEnum:
		return "enum"
	case KindProtocol:
		return "protocol"
	case KindProtocolComposition:
		return "protocolComposition"
	default:
		return "unknown"
	}
}

// Type is a declared nominal type: a Class, Struct, Enum, ProtocolType, or
// ProtocolComposition. All share TypeHeader for the fields common to every
// kind; Header returns a pointer into the concrete value so callers (and the
// Unifier, Member Resolver, and Ancestor Closure) can mutate shared state
// without a type switch.
type Type interface {
	Kind() Kind
	Header() *TypeHeader
}

// TypeHeader carries the fields every nominal Type has, per spec.md §3.1.
//
// ContainingType, Supertype, and the values in Inherits/Implements/BasedTypes
// are non-owning aliases into the same arena the Unifier builds (spec.md
// §3.4): every Type value comes from the ParserResult, and no resolution
// phase allocates a new one.
type TypeHeader struct {
	GlobalName string
	Name       string
	Module     string
	Imports    []string

	// IsExtension marks a raw declaration as an extension rather than a
	// full body; the Unifier consumes this and it has no meaning afterward.
	IsExtension bool

	ContainingType Type
	NestedTypes    []Type

	Variables  []*Variable
	Methods    []*Method
	Subscripts []*Subscript

	InheritedTypeNames []*TypeName

	// Based holds the raw textual base names contributed by InheritedTypeNames
	// (and, for protocol compositions, composed names) during unification.
	Based map[string]struct{}

	// BasedTypes, Inherits, and Implements are populated by the Ancestor
	// Closure (component E). BasedTypes is the union of every ancestor
	// regardless of kind; Inherits holds only Class ancestors; Implements
	// holds only protocol/protocol-composition ancestors.
	BasedTypes map[string]Type
	Inherits   map[string]Type
	Implements map[string]Type
}

// Header returns h itself, letting every embedding kind satisfy the Type
// interface's Header() method through promotion.
func (h *TypeHeader) Header() *TypeHeader { return h }

func newHeader(globalName, name, module string, imports []string) TypeHeader {
	return TypeHeader{
		GlobalName: globalName,
		Name:       name,
		Module:     module,
		Imports:    imports,
		Based:      make(map[string]struct{}),
		BasedTypes: make(map[string]Type),
		Inherits:   make(map[string]Type),
		Implements: make(map[string]Type),
	}
}

// Class is a nominal reference type. Supertype is set iff the first entry of
// InheritedTypeNames resolves to another Class (spec.md invariant 5).
type Class struct {
	TypeHeader
	Supertype *Class
}

func (c *Class) Kind() Kind { return KindClass }

// NewClass constructs a Class with an initialized header.
func NewClass(globalName, name, module string, imports []string) *Class {
	return &Class{TypeHeader: newHeader(globalName, name, module, imports)}
}

// Struct is a nominal value type, treated as a generic nominal per spec.md §3.1.
type Struct struct {
	TypeHeader
}

func (s *Struct) Kind() Kind { return KindStruct }

// NewStruct constructs a Struct with an initialized header.
func NewStruct(globalName, name, module string, imports []string) *Struct {
	return &Struct{TypeHeader: newHeader(globalName, name, module, imports)}
}

// Enum is a nominal type with cases, and optionally a raw representation.
type Enum struct {
	TypeHeader
	Cases []*EnumCase

	// RawTypeName is nil when the enum has no raw type, or when every case
	// carries associated values. RawType is additionally nil (but
	// RawTypeName kept textually set) when the declared raw type resolves
	// to a protocol or protocol composition (spec.md invariant 4).
	RawTypeName *TypeName
	RawType     Type
}

func (e *Enum) Kind() Kind { return KindEnum }

// NewEnum constructs an Enum with an initialized header.
func NewEnum(globalName, name, module string, imports []string) *Enum {
	return &Enum{TypeHeader: newHeader(globalName, name, module, imports)}
}

// HasCaseWithoutAssociatedValues reports whether at least one case carries
// no associated values, a precondition for adopting an inherited raw type.
func (e *Enum) HasCaseWithoutAssociatedValues() bool {
	for _, c := range e.Cases {
		if len(c.AssociatedValues) == 0 {
			return true
		}
	}
	return false
}

// AllCasesHaveAssociatedValues reports whether the enum has at least one
// case and every case carries associated values.
func (e *Enum) AllCasesHaveAssociatedValues() bool {
	if len(e.Cases) == 0 {
		return false
	}
	for _, c := range e.Cases {
		if len(c.AssociatedValues) == 0 {
			return false
		}
	}
	return true
}

// ProtocolType is a protocol declaration.
type ProtocolType struct {
	TypeHeader
	AssociatedTypes     []*AssociatedType
	GenericRequirements []*GenericRequirement
}

func (p *ProtocolType) Kind() Kind { return KindProtocol }

// NewProtocolType constructs a ProtocolType with an initialized header.
func NewProtocolType(globalName, name, module string, imports []string) *ProtocolType {
	return &ProtocolType{TypeHeader: newHeader(globalName, name, module, imports)}
}

// ProtocolComposition is the intersection of multiple protocols.
type ProtocolComposition struct {
	TypeHeader
	ComposedTypeNames []*TypeName
	ComposedTypes     []Type
}

func (p *ProtocolComposition) Kind() Kind { return KindProtocolComposition }

// NewProtocolComposition constructs a ProtocolComposition with an initialized header.
func NewProtocolComposition(globalName, name, module string, imports []string) *ProtocolComposition {
	return &ProtocolComposition{TypeHeader: newHeader(globalName, name, module, imports)}
}
