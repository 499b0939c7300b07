package model

// ParserResult is the sole input to the core: a possibly duplicated list of
// type declarations and extensions, free functions, and typealiases, each
// tagged with its declaring module and imports.
type ParserResult struct {
	Types       []Type
	Functions   []*Method
	Typealiases []*Typealias
}
