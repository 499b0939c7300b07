// Package typegraph implements component F, the Orchestrator: it sequences
// unification, typealias resolution, parallel member resolution, and
// ancestor closure over a parser's raw declaration list, returning a sorted,
// fully cross-linked type graph.
//
// The package consumes a model.ParserResult and returns exactly the triple
// spec.md §6 describes; it has no file format, wire protocol, or CLI
// surface of its own — those live in cmd/typegraphctl.
package typegraph

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"typegraph/internal/ancestry"
	"typegraph/internal/memberresolve"
	"typegraph/internal/nameresolve"
	"typegraph/internal/typeexpr"
	"typegraph/internal/unify"
	"typegraph/model"
)

// Options tunes the Orchestrator without changing its observable output:
// Jobs bounds the Member Resolver's worker pool (spec.md §5). Zero means
// runtime.GOMAXPROCS(0).
type Options struct {
	Jobs int
}

// UniqueTypesAndFunctions runs the full pipeline with default options.
func UniqueTypesAndFunctions(pr model.ParserResult) ([]model.Type, []*model.Method, []*model.Typealias) {
	return UniqueTypesAndFunctionsWithOptions(pr, Options{})
}

// UniqueTypesAndFunctionsWithOptions runs the full pipeline: unify (A),
// resolve every typealias's target, fan out the Member Resolver (D, via B
// and C) across types and free functions, run the Ancestor Closure (E)
// sequentially, and return the three output lists sorted per spec.md
// invariant 7.
func UniqueTypesAndFunctionsWithOptions(pr model.ParserResult, opts Options) ([]model.Type, []*model.Method, []*model.Typealias) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	unified := unify.Unify(pr.Types)
	aliases := nameresolve.BuildAliases(pr.Typealiases)
	universe := nameresolve.Universe{
		TypeMap:     unified.TypeMap,
		UniqueTypes: unified.UniqueTypes,
		Aliases:     aliases,
	}

	types := make([]model.Type, 0, len(unified.TypeMap))
	for _, t := range unified.TypeMap {
		types = append(types, t)
	}

	resolveTypealiases(pr.Typealiases, universe)
	resolveMembersParallel(types, universe, jobs)
	resolveFunctionsParallel(pr.Functions, universe, jobs)

	ancestry.Compute(types)

	sortByGlobalName(types)
	functions := append([]*model.Method(nil), pr.Functions...)
	sortByName(functions)
	typealiases := append([]*model.Typealias(nil), pr.Typealiases...)
	sortAliasesByName(typealiases)

	return types, functions, typealiases
}

func resolveTypealiases(all []*model.Typealias, universe nameresolve.Universe) {
	for _, a := range all {
		ctx := typeexpr.Context{
			ContainingType: a.ParentType,
			Module:         a.Module,
			Imports:        a.Imports,
			Universe:       universe,
		}
		a.Type = typeexpr.Resolve(a.TypeName, ctx)
	}
}

// resolveMembersParallel fans the Member Resolver out across types with a
// bounded errgroup: each goroutine only ever touches TypeName/Type slots
// reachable from the single type it owns, so the disjoint writes need no
// synchronization (spec.md §5).
func resolveMembersParallel(types []model.Type, universe nameresolve.Universe, jobs int) {
	g := new(errgroup.Group)
	g.SetLimit(jobs)
	for _, t := range types {
		t := t
		g.Go(func() error {
			ctx := typeexpr.Context{
				ContainingType: t,
				Module:         t.Header().Module,
				Imports:        t.Header().Imports,
				Universe:       universe,
			}
			memberresolve.Type(t, ctx)
			return nil
		})
	}
	_ = g.Wait() // Member Resolver never errors; the group only bounds concurrency.
}

func resolveFunctionsParallel(functions []*model.Method, universe nameresolve.Universe, jobs int) {
	g := new(errgroup.Group)
	g.SetLimit(jobs)
	for _, fn := range functions {
		fn := fn
		g.Go(func() error {
			ctx := typeexpr.Context{
				ContainingType: nil,
				Module:         fn.Module,
				Imports:        fn.Imports,
				Universe:       universe,
			}
			memberresolve.Method(fn, ctx)
			return nil
		})
	}
	_ = g.Wait()
}

func sortByGlobalName(types []model.Type) {
	sort.Slice(types, func(i, j int) bool {
		return types[i].Header().GlobalName < types[j].Header().GlobalName
	})
}

func sortByName(functions []*model.Method) {
	sort.Slice(functions, func(i, j int) bool {
		return functions[i].Name < functions[j].Name
	})
}

func sortAliasesByName(aliases []*model.Typealias) {
	sort.Slice(aliases, func(i, j int) bool {
		return aliases[i].Name < aliases[j].Name
	})
}
