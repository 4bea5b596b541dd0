package generate

import (
	"fmt"
	"sync"

	"github.com/piwi3910/platestamper/internal/csg"
	"github.com/piwi3910/platestamper/internal/model"
)

// GeneratorFunc derives one component's CSG tree from a parameter set.
type GeneratorFunc func(model.ParameterSet) csg.Solid

// advancedGenerators and simpleGenerators are the two tool families. Both
// share the reference plate.
var advancedGenerators = map[model.ComponentKind]GeneratorFunc{
	model.ComponentPlate:  Plate,
	model.ComponentInsert: Insert,
	model.ComponentFrame:  Frame,
	model.ComponentTopper: Topper,
	model.ComponentCutter: Cutter,
}

var simpleGenerators = map[model.ComponentKind]GeneratorFunc{
	model.ComponentPlate: Plate,
	model.ComponentStamp: Stamp,
	model.ComponentMould: Mould,
}

// Toolset generates and memoizes the components of one validated parameter
// set. The parameter set never changes after construction, so cached trees
// never go stale and there is no invalidation path. A Toolset is safe for
// concurrent use; the mutex makes check-then-compute-then-store atomic so
// each kind is computed at most once.
type Toolset struct {
	params model.ParameterSet
	kinds  []model.ComponentKind
	gen    map[model.ComponentKind]GeneratorFunc

	mu    sync.Mutex
	cache map[model.ComponentKind]csg.Solid
}

// NewAdvancedToolset returns the insert/frame/topper/cutter tool family for a
// validated parameter set.
func NewAdvancedToolset(ps model.ParameterSet) *Toolset {
	return &Toolset{
		params: ps,
		kinds:  model.AdvancedKinds,
		gen:    advancedGenerators,
		cache:  make(map[model.ComponentKind]csg.Solid),
	}
}

// NewSimpleToolset returns the stamp/mould tool family for a validated
// parameter set.
func NewSimpleToolset(ps model.ParameterSet) *Toolset {
	return &Toolset{
		params: ps,
		kinds:  model.SimpleKinds,
		gen:    simpleGenerators,
		cache:  make(map[model.ComponentKind]csg.Solid),
	}
}

// Params returns the parameter set this toolset was built from.
func (t *Toolset) Params() model.ParameterSet {
	return t.params
}

// Kinds returns the component kinds this toolset can generate.
func (t *Toolset) Kinds() []model.ComponentKind {
	return t.kinds
}

// Component returns the CSG tree for a component kind, generating it on
// first request and returning the cached tree afterwards.
func (t *Toolset) Component(kind model.ComponentKind) (csg.Solid, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if s, ok := t.cache[kind]; ok {
		return s, nil
	}
	gen, ok := t.gen[kind]
	if !ok {
		return nil, fmt.Errorf("generate: toolset has no component %q", kind)
	}
	s := gen(t.params)
	t.cache[kind] = s
	return s, nil
}
