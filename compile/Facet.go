package compile

import (
	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
)

/***************************************
 * Facet
 ***************************************/

// Facet carries the five flag lists the recipe publishes to downstream
// consumers. Order is preserved: linkers care.

type Facetable interface {
	GetFacet() *Facet
}

type Facet struct {
	Defines base.StringSet `json:"defines"`

	CFlags   base.StringSet `json:"cflags"`
	CxxFlags base.StringSet `json:"cxxflags"`

	ExeLinkerOptions    base.StringSet `json:"exelinkflags"`
	SharedLinkerOptions base.StringSet `json:"sharedlinkflags"`

	// Exports are named hints for the consuming build system, not command
	// line flags (eg telling it to ignore the host profile's libcxx).
	Exports VariableDefinitions `json:"exports,omitempty"`
}

type VariableDefinition struct {
	Name, Value string
}
type VariableDefinitions []VariableDefinition

func (vars *VariableDefinitions) Add(name, value string) {
	for i, it := range *vars {
		if it.Name == name {
			(*vars)[i].Value = value
			return
		}
	}
	*vars = append(*vars, VariableDefinition{Name: name, Value: value})
}
func (vars VariableDefinitions) Get(name string) (string, bool) {
	for _, it := range vars {
		if it.Name == name {
			return it.Value, true
		}
	}
	return "", false
}

func NewFacet() Facet {
	return Facet{
		Defines:             base.StringSet{},
		CFlags:              base.StringSet{},
		CxxFlags:            base.StringSet{},
		ExeLinkerOptions:    base.StringSet{},
		SharedLinkerOptions: base.StringSet{},
	}
}

func (facet *Facet) GetFacet() *Facet {
	return facet
}

func (facet *Facet) Append(others ...Facetable) {
	for _, o := range others {
		x := o.GetFacet()
		facet.Defines.Append(x.Defines...)
		facet.CFlags.Append(x.CFlags...)
		facet.CxxFlags.Append(x.CxxFlags...)
		facet.ExeLinkerOptions.Append(x.ExeLinkerOptions...)
		facet.SharedLinkerOptions.Append(x.SharedLinkerOptions...)
	}
}
func (facet *Facet) AppendUniq(others ...Facetable) {
	for _, o := range others {
		x := o.GetFacet()
		facet.Defines.AppendUniq(x.Defines...)
		facet.CFlags.AppendUniq(x.CFlags...)
		facet.CxxFlags.AppendUniq(x.CxxFlags...)
		facet.ExeLinkerOptions.AppendUniq(x.ExeLinkerOptions...)
		facet.SharedLinkerOptions.AppendUniq(x.SharedLinkerOptions...)
	}
}
func (facet *Facet) Prepend(others ...Facetable) {
	for _, o := range others {
		x := o.GetFacet()
		facet.Defines.Prepend(x.Defines...)
		facet.CFlags.Prepend(x.CFlags...)
		facet.CxxFlags.Prepend(x.CxxFlags...)
		facet.ExeLinkerOptions.Prepend(x.ExeLinkerOptions...)
		facet.SharedLinkerOptions.Prepend(x.SharedLinkerOptions...)
	}
}

// AddCompilationFlag feeds both C and C++ compilations.
func (facet *Facet) AddCompilationFlag(flags ...string) {
	facet.CFlags.Append(flags...)
	facet.CxxFlags.Append(flags...)
}

// AddCompilationAndLinkFlag is for flags clang wants on every driver
// invocation, -target and -mcpu among them.
func (facet *Facet) AddCompilationAndLinkFlag(flags ...string) {
	facet.AddCompilationFlag(flags...)
	facet.AddLinkFlag(flags...)
}

func (facet *Facet) AddLinkFlag(flags ...string) {
	facet.ExeLinkerOptions.Append(flags...)
	facet.SharedLinkerOptions.Append(flags...)
}

func (facet *Facet) Define(def ...string) {
	facet.Defines.Append(def...)
}

func (facet *Facet) String() string {
	return base.PrettyPrint(facet)
}
