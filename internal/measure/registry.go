package measure

import (
	_ "embed"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed units.cue
var unitsCUE []byte

// Category groups units that measure the same quantity.
type Category string

const (
	Length   Category = "length"
	Weight   Category = "weight"
	Capacity Category = "capacity"
)

// BaseUnit is the SI unit a category converts through.
type BaseUnit struct {
	Name   string `json:"name" yaml:"name"`
	Symbol string `json:"symbol" yaml:"symbol"`
}

var baseUnits = map[Category]BaseUnit{
	Length:   {Name: "meter", Symbol: "m"},
	Weight:   {Name: "kilogram", Symbol: "kg"},
	Capacity: {Name: "liter", Symbol: "L"},
}

// Base returns the SI base unit of c.
func (c Category) Base() BaseUnit {
	return baseUnits[c]
}

// Unit is one row of the registry.
type Unit struct {
	Name     string   `json:"name" yaml:"name"`
	Category Category `json:"category" yaml:"category"`

	// Factor is the size of one unit in the category's base unit.
	Factor float64 `json:"factor" yaml:"factor"`
}

// Base returns the SI base unit u converts through.
func (u Unit) Base() BaseUnit {
	return u.Category.Base()
}

// Registry is an immutable, ordered set of units with unique names.
type Registry struct {
	units  []Unit
	byName map[string]Unit
	names  []string
}

// unitDef mirrors #Unit in units.cue.
type unitDef struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Factor   float64 `json:"factor"`
}

var loadDefault = sync.OnceValues(func() (*Registry, error) {
	return Load(unitsCUE)
})

// Default returns the built-in registry. It is compiled on first use and
// shared by every later caller.
func Default() (*Registry, error) {
	return loadDefault()
}

// Load compiles a CUE unit table and builds a registry from its "units"
// list. The source must be concrete; the CUE schema and the Go-side checks
// both reject non-positive factors, unknown categories and duplicate names.
func Load(src []byte) (*Registry, error) {
	ctx := cuecontext.New()

	v := ctx.CompileBytes(src, cue.Filename("units.cue"))
	if err := v.Err(); err != nil {
		return nil, invalidRegistry("compile unit table", cueError(err))
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, invalidRegistry("validate unit table", cueError(err))
	}

	unitsVal := v.LookupPath(cue.ParsePath("units"))
	if !unitsVal.Exists() {
		return nil, invalidRegistry("unit table has no units list", nil)
	}

	var defs []unitDef
	if err := unitsVal.Decode(&defs); err != nil {
		return nil, invalidRegistry("decode unit table", cueError(err))
	}

	return newRegistry(defs)
}

func newRegistry(defs []unitDef) (*Registry, error) {
	if len(defs) == 0 {
		return nil, invalidRegistry("unit table is empty", nil)
	}

	r := &Registry{
		units:  make([]Unit, 0, len(defs)),
		byName: make(map[string]Unit, len(defs)),
		names:  make([]string, 0, len(defs)),
	}

	for i, d := range defs {
		cat := Category(d.Category)
		if _, ok := baseUnits[cat]; !ok {
			return nil, invalidRegistry(fmt.Sprintf("units[%d] %q: unknown category %q", i, d.Name, d.Category), nil)
		}
		if !(d.Factor > 0) {
			return nil, invalidRegistry(fmt.Sprintf("units[%d] %q: factor must be positive, got %g", i, d.Name, d.Factor), nil)
		}
		if _, dup := r.byName[d.Name]; dup {
			return nil, invalidRegistry(fmt.Sprintf("units[%d]: duplicate unit name %q", i, d.Name), nil)
		}

		u := Unit{Name: d.Name, Category: cat, Factor: d.Factor}
		r.units = append(r.units, u)
		r.byName[u.Name] = u
		r.names = append(r.names, u.Name)
	}

	return r, nil
}

// cueError flattens a CUE error list into one error with positions.
func cueError(err error) error {
	return fmt.Errorf("%s", cueerrors.Details(err, nil))
}

// Lookup returns the unit with exactly this name. Matching is case-sensitive.
func (r *Registry) Lookup(name string) (Unit, error) {
	u, ok := r.byName[name]
	if !ok {
		return Unit{}, unknownUnit(name, r.Names())
	}
	return u, nil
}

// Names returns the unit names in registry order. For the built-in table:
// pes, passus, stadium, mille_passus, libra, uncia, amphora, sextarius.
// The slice is a copy.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Units returns the units in registry order. The slice is a copy.
func (r *Registry) Units() []Unit {
	return append([]Unit(nil), r.units...)
}
