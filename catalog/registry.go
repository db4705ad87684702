package catalog

import (
	"fmt"
	"sync"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/speclex"
)

// Registry holds the specs of the catalog. Specs are constructed once and
// handed out read-only, so they may be shared between concurrent scanners.
// Clients inject spec lists from a registry into scanners; there is no hidden
// global state apart from the lazily created Default registry.
type Registry struct {
	specs          map[speclex.TokType]*speclex.TokenSpec
	names          *treeset.Set // sorted type names of specs
	discardNewline *speclex.TokenSpec
	mu             sync.Mutex // guards memo
	memo           map[string]*speclex.TokenSpec
}

var defaultRegistry *Registry
var initOnce sync.Once // monitors one-time initialization

// Default returns the default registry, creating it on first use.
func Default() *Registry {
	initOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry with all specs of the catalog, without
// subtype classification.
func NewRegistry() *Registry {
	r := &Registry{
		specs: make(map[speclex.TokType]*speclex.TokenSpec),
		names: treeset.NewWith(utils.StringComparator),
		memo:  make(map[string]*speclex.TokenSpec),
	}
	for _, spec := range []*speclex.TokenSpec{
		Timestamp(), Date(), Time(), RelDate(), Month(), Day(),
		Number(), Integer(),
		AlphaNum(), Newline(), Punctuation(), Quote(), SearchTerm(), UUIDString(), Word(),
	} {
		r.specs[spec.Type()] = spec
		r.names.Add(string(spec.Type()))
	}
	r.discardNewline = r.specs[NEWLINE].Discarding()
	tracer().Debugf("catalog registry holds %d specs", r.names.Size())
	return r
}

// Lookup returns the spec for a token type.
func (r *Registry) Lookup(typ speclex.TokType) (*speclex.TokenSpec, bool) {
	spec, ok := r.specs[typ]
	return spec, ok
}

// Names returns the token types of all specs in the registry, sorted.
func (r *Registry) Names() []speclex.TokType {
	n := make([]speclex.TokType, 0, r.names.Size())
	it := r.names.Iterator()
	for it.Next() {
		n = append(n, speclex.TokType(it.Value().(string)))
	}
	return n
}

// Specs returns the specs for a list of token types, in the order given.
func (r *Registry) Specs(types ...speclex.TokType) ([]*speclex.TokenSpec, error) {
	specs := make([]*speclex.TokenSpec, 0, len(types))
	for _, typ := range types {
		spec, ok := r.specs[typ]
		if !ok {
			return nil, fmt.Errorf("no token spec for type %q in catalog", typ)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// --- Orderings -------------------------------------------------------------

// DefaultSpecs returns the default ordering: quotes and search terms come
// before words and punctuation. Newlines are matched, but do not produce
// tokens.
func (r *Registry) DefaultSpecs() []*speclex.TokenSpec {
	return []*speclex.TokenSpec{
		r.specs[QUOTE], r.specs[TERM], r.discardNewline, r.specs[WORD], r.specs[PUNCTUATION],
	}
}

// DateTimeSpecs returns timestamp, date and time, in this order. Putting date
// or time in front of timestamp would split timestamps in two.
func (r *Registry) DateTimeSpecs() []*speclex.TokenSpec {
	return []*speclex.TokenSpec{r.specs[TIMESTAMP], r.specs[DATE], r.specs[TIME]}
}

// NumericSpecs returns integer and number.
func (r *Registry) NumericSpecs() []*speclex.TokenSpec {
	return []*speclex.TokenSpec{r.specs[INTEGER], r.specs[NUMBER]}
}

// FullSpecs returns all specs of the catalog except ALPHANUM, in an order
// suitable for free text.
func (r *Registry) FullSpecs() []*speclex.TokenSpec {
	return []*speclex.TokenSpec{
		r.specs[QUOTE], r.discardNewline, r.specs[UUID],
		r.specs[TIMESTAMP], r.specs[DATE], r.specs[TIME],
		r.specs[TERM], r.specs[NUMBER], r.specs[INTEGER],
		r.specs[RELDATE], r.specs[MONTH], r.specs[DAY],
		r.specs[WORD], r.specs[PUNCTUATION],
	}
}

// --- Parameterized specs ---------------------------------------------------

// Word returns a WORD spec classified by subtypes. Specs are memoized: calls
// with equal subtype tables return the same spec.
func (r *Registry) Word(subtypes ...Subtype) *speclex.TokenSpec {
	return r.memoized("word", subtypes, Word)
}

// AlphaNum returns an ALPHANUM spec classified by subtypes (memoized).
func (r *Registry) AlphaNum(subtypes ...Subtype) *speclex.TokenSpec {
	return r.memoized("alphanum", subtypes, AlphaNum)
}

// Month returns a MONTH spec classified by subtypes (memoized).
func (r *Registry) Month(subtypes ...Subtype) *speclex.TokenSpec {
	return r.memoized("month", subtypes, Month)
}

// Day returns a DAY spec classified by subtypes (memoized).
func (r *Registry) Day(subtypes ...Subtype) *speclex.TokenSpec {
	return r.memoized("day", subtypes, Day)
}

type memoKey struct {
	Factory  string
	Subtypes []Subtype
}

func (r *Registry) memoized(factory string, subtypes []Subtype,
	create func(...Subtype) *speclex.TokenSpec) *speclex.TokenSpec {
	//
	key, err := structhash.Hash(memoKey{Factory: factory, Subtypes: subtypes}, 1)
	if err != nil {
		tracer().Errorf("cannot hash subtypes for %s: %v", factory, err)
		return create(subtypes...)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if spec, ok := r.memo[key]; ok {
		return spec
	}
	spec := create(subtypes...)
	r.memo[key] = spec
	tracer().Debugf("memoized %s spec for key %s", factory, key)
	return spec
}
