package resolver

import (
	"github.com/bramblecore/attrflow/attrctx"
	"github.com/bramblecore/attrflow/attrerr"
	"github.com/bramblecore/attrflow/attrid"
	"github.com/bramblecore/attrflow/attrval"
	"github.com/bramblecore/attrflow/depgraph"
	"github.com/bramblecore/attrflow/source"
	"github.com/bramblecore/attrflow/transform"
)

// layer holds one resolver's own registrations. Every Resolver writes only
// into its own layer; once a Fork creates descendants, a layer is never
// written to again and is shared, read-only, by every resolver whose chain
// passes through it. This is the copy-on-write mechanism: a deep tree of
// forks costs one small layer per fork, not a copy of the whole
// registration set.
type layer struct {
	parent *layer

	order      []attrid.Identifier
	present    map[attrid.Identifier]struct{}
	sources    map[attrid.Identifier][]source.Source
	transforms map[attrid.Identifier][]transform.Entry
}

func newLayer(parent *layer) *layer {
	return &layer{
		parent:     parent,
		present:    make(map[attrid.Identifier]struct{}),
		sources:    make(map[attrid.Identifier][]source.Source),
		transforms: make(map[attrid.Identifier][]transform.Entry),
	}
}

// chainRootToLeaf returns every layer from the oldest ancestor to l itself.
func (l *layer) chainRootToLeaf() []*layer {
	var chain []*layer
	for cur := l; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

func (l *layer) containsAncestry(id attrid.Identifier) bool {
	for cur := l; cur != nil; cur = cur.parent {
		if _, ok := cur.present[id]; ok {
			return true
		}
	}
	return false
}

// Resolver holds one variant's view of the attribute registration set (a
// chain of layers, root being the original registrations and each fork
// adding one more layer) and that variant's own memoization cache.
type Resolver struct {
	factory attrval.Factory
	current *layer
	cache   map[attrid.Identifier]ResolvedAttribute
}

// Option configures a Resolver at construction time.
type Option func(*Resolver)

// WithFactory selects the numeric realization every value the resolver
// produces uses. Defaults to attrval.Float64Factory{}.
func WithFactory(f attrval.Factory) Option {
	return func(r *Resolver) {
		if f != nil {
			r.factory = f
		}
	}
}

// WithCapacityHint preallocates the resolver's cache for approximately n
// attributes. Pure performance hint; has no effect on behavior.
func WithCapacityHint(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.cache = make(map[attrid.Identifier]ResolvedAttribute, n)
		}
	}
}

// New returns an empty Resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		factory: attrval.Float64Factory{},
		current: newLayer(nil),
		cache:   make(map[attrid.Identifier]ResolvedAttribute),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resolver) ensureRegistered(id attrid.Identifier) {
	if r.current.containsAncestry(id) {
		return
	}
	r.current.present[id] = struct{}{}
	r.current.order = append(r.current.order, id)
}

// RegisterSource appends src to id's source list and invalidates id's
// cache entry.
func (r *Resolver) RegisterSource(id attrid.Identifier, src source.Source) {
	r.ensureRegistered(id)
	r.current.sources[id] = append(r.current.sources[id], src)
	r.Invalidate(id)
}

func (r *Resolver) registerEntry(id attrid.Identifier, entry transform.Entry) {
	r.ensureRegistered(id)
	r.current.transforms[id] = append(r.current.transforms[id], entry)
	r.Invalidate(id)
}

// RegisterTransform registers t against id using its own DefaultPhase and
// that phase's inferred stack rule.
func (r *Resolver) RegisterTransform(id attrid.Identifier, t transform.Transform) {
	phase := t.DefaultPhase()
	r.registerEntry(id, transform.Entry{Transform: t, Phase: phase, Rule: transform.InferRule(phase)})
}

// RegisterTransformInPhase registers t against id in the given phase, with
// that phase's inferred stack rule.
func (r *Resolver) RegisterTransformInPhase(id attrid.Identifier, phase transform.Phase, t transform.Transform) {
	r.registerEntry(id, transform.Entry{Transform: t, Phase: phase, Rule: transform.InferRule(phase)})
}

// RegisterTransformExplicit registers t against id with an explicit phase
// and stack rule, overriding any inference.
func (r *Resolver) RegisterTransformExplicit(id attrid.Identifier, phase transform.Phase, rule transform.StackRule, t transform.Transform) {
	r.registerEntry(id, transform.Entry{Transform: t, Phase: phase, Rule: rule})
}

// Invalidate evicts id's cached result, if any. Registration already calls
// this automatically; exposed for callers whose Source/Transform
// implementations depend on external state that changed out from under
// them.
func (r *Resolver) Invalidate(id attrid.Identifier) {
	delete(r.cache, id)
}

// InvalidateAll evicts every cached result.
func (r *Resolver) InvalidateAll() {
	r.cache = make(map[attrid.Identifier]ResolvedAttribute)
}

// Breakdown returns the cached result for id without triggering a resolve.
func (r *Resolver) Breakdown(id attrid.Identifier) (ResolvedAttribute, bool) {
	ra, ok := r.cache[id]
	return ra, ok
}

// Fork returns a child Resolver whose registrations currently equal this
// resolver's. The shared history up to this point becomes a read-only
// layer both resolvers build on; writes made afterward on either side,
// including on the parent, land only in that side's own new layer.
func (r *Resolver) Fork() *Resolver {
	shared := r.current
	r.current = newLayer(shared)
	return &Resolver{
		factory: r.factory,
		current: newLayer(shared),
		cache:   make(map[attrid.Identifier]ResolvedAttribute),
	}
}

func (r *Resolver) allRegisteredIDs() []attrid.Identifier {
	chain := r.current.chainRootToLeaf()
	total := 0
	for _, l := range chain {
		total += len(l.order)
	}
	out := make([]attrid.Identifier, 0, total)
	for _, l := range chain {
		out = append(out, l.order...)
	}
	return out
}

func (r *Resolver) effectiveSources(id attrid.Identifier) []source.Source {
	var out []source.Source
	for _, l := range r.current.chainRootToLeaf() {
		out = append(out, l.sources[id]...)
	}
	return out
}

func (r *Resolver) effectiveTransforms(id attrid.Identifier) []transform.Entry {
	var out []transform.Entry
	for _, l := range r.current.chainRootToLeaf() {
		out = append(out, l.transforms[id]...)
	}
	return out
}

// buildGraph constructs the dependency graph from every currently
// registered identifier and every transform's declared reads.
func (r *Resolver) buildGraph() *depgraph.Graph {
	g := depgraph.New()
	ids := r.allRegisteredIDs()
	for _, id := range ids {
		g.AddNode(id)
	}
	for _, id := range ids {
		for _, entry := range r.effectiveTransforms(id) {
			for _, read := range entry.Transform.DeclaredReads() {
				g.AddEdge(id, read)
			}
		}
	}
	return g
}

// Resolve computes (or returns the cached) value of id. A single-target
// Resolve always orders the resolver's entire registration graph, matching
// ResolveAll; use ResolveBatch to limit work to a specific target set.
func (r *Resolver) Resolve(id attrid.Identifier, ctx *attrctx.Context) (ResolvedAttribute, error) {
	if cached, ok := r.cache[id]; ok {
		return cached, nil
	}

	g := r.buildGraph()
	if !g.Contains(id) {
		return ResolvedAttribute{}, &attrerr.MissingSourceError{ID: id}
	}

	order, err := g.TopologicalSort()
	if err != nil {
		return ResolvedAttribute{}, err
	}
	if err := r.sweep(order, ctx); err != nil {
		return ResolvedAttribute{}, err
	}

	return r.cache[id], nil
}

// ResolveAll resolves every explicitly registered identifier (sources or
// transforms registered directly against it), returning a map keyed by
// identifier. Identifiers that exist only as another transform's declared
// read are resolved internally to support the sweep but are not projected
// into the result.
func (r *Resolver) ResolveAll(ctx *attrctx.Context) (map[attrid.Identifier]ResolvedAttribute, error) {
	g := r.buildGraph()
	order, err := g.TopologicalSort()
	if err != nil {
		return nil, err
	}
	if err := r.sweep(order, ctx); err != nil {
		return nil, err
	}

	ids := r.allRegisteredIDs()
	out := make(map[attrid.Identifier]ResolvedAttribute, len(ids))
	for _, id := range ids {
		out[id] = r.cache[id]
	}
	return out, nil
}

// ResolveBatch resolves exactly the requested targets, ordering only their
// reverse-reachable dependency subgraph rather than the whole registration
// graph. Targets that were never registered and never declared as a read
// are silently omitted from the result rather than erroring.
func (r *Resolver) ResolveBatch(ids []attrid.Identifier, ctx *attrctx.Context) (map[attrid.Identifier]ResolvedAttribute, error) {
	g := r.buildGraph()
	sub := g.SubgraphFor(ids)

	order, err := sub.TopologicalSort()
	if err != nil {
		return nil, err
	}
	if err := r.sweep(order, ctx); err != nil {
		return nil, err
	}

	out := make(map[attrid.Identifier]ResolvedAttribute, len(ids))
	for _, id := range ids {
		if ra, ok := r.cache[id]; ok {
			out[id] = ra
		}
	}
	return out, nil
}

// sweep resolves every identifier in order that is not already cached,
// each one able to read its dependencies' values from the cache because
// order is topological. On error, every entry this sweep added is removed
// again, so the cache is left as it was before the call.
func (r *Resolver) sweep(order []attrid.Identifier, ctx *attrctx.Context) error {
	var added []attrid.Identifier
	for _, id := range order {
		if _, ok := r.cache[id]; ok {
			continue
		}
		ra, err := r.resolveAttribute(id, ctx)
		if err != nil {
			for _, a := range added {
				delete(r.cache, a)
			}
			return err
		}
		r.cache[id] = ra
		added = append(added, id)
	}
	return nil
}
