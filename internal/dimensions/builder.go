// Package dimensions builds the dimension registry of a SIE document.
package dimensions

import (
	"github.com/cleared-dev/sie4/internal/diag"
	"github.com/cleared-dev/sie4/internal/model"
)

// Unspecified is the description given to synthesized dimensions.
const Unspecified = "UNSPECIFIED"

// CostCarrier is the description of the synthesized dimension 2.
const CostCarrier = "cost-carrier"

// reserved maps SIE reserved dimension numbers to their canonical descriptions.
var reserved = map[int]string{
	1:  "cost centre",
	6:  "project",
	7:  "employee",
	8:  "customer",
	9:  "supplier",
	10: "invoice",
}

// ReservedDescription returns the canonical description of a reserved dimension number.
func ReservedDescription(number int) (string, bool) {
	desc, ok := reserved[number]
	return desc, ok
}

// Builder creates and keeps track of dimensions and objects. A Builder
// belongs to a single parse and is not safe for concurrent use.
type Builder struct {
	logger diag.Logger
	dims   map[model.DimensionKey]model.Dimension
	order  []model.DimensionKey
}

// NewBuilder creates an empty Builder reporting to logger.
func NewBuilder(logger diag.Logger) *Builder {
	return &Builder{
		logger: logger,
		dims:   make(map[model.DimensionKey]model.Dimension),
	}
}

// Add registers dimension number. A nonzero super becomes its parent,
// synthesized if not yet declared. A super that would make number its own
// ancestor is dropped with a warning.
func (b *Builder) Add(number int, description string, super int) model.Dimension {
	var parent *model.DimensionKey
	if super != 0 {
		p := b.Get(super)
		if p.Key == model.SimpleKey(number) || b.InDimension(p, model.SimpleKey(number)) {
			diag.Warn(b.logger, "Dimension number %d can not belong to %d, ignoring parent", number, super)
		} else {
			parent = &p.Key
		}
	}
	return b.store(model.NewDimension(model.SimpleKey(number), description, parent))
}

// AddObject registers object number within dimension super.
func (b *Builder) AddObject(super, number int, description string) model.Dimension {
	parent := b.Get(super).Key
	return b.store(model.NewDimension(model.ObjectKey(super, number), description, &parent))
}

// Get returns dimension number, synthesizing it if it was never added.
func (b *Builder) Get(number int) model.Dimension {
	if d, ok := b.dims[model.SimpleKey(number)]; ok {
		return d
	}

	diag.Warn(b.logger, "Dimension number %d not defined", number)

	if number == 2 {
		parent := b.Get(1).Key
		return b.store(model.NewDimension(model.SimpleKey(2), CostCarrier, &parent))
	}

	desc, ok := reserved[number]
	if !ok {
		desc = Unspecified
	}
	return b.store(model.NewDimension(model.SimpleKey(number), desc, nil))
}

// GetObject returns object number of dimension super, synthesizing it if
// it was never added.
func (b *Builder) GetObject(super, number int) model.Dimension {
	if d, ok := b.dims[model.ObjectKey(super, number)]; ok {
		return d
	}

	diag.Warn(b.logger, "Object number %d.%d not defined", super, number)

	return b.AddObject(super, number, Unspecified)
}

// Lookup returns the dimension stored under key without synthesizing.
func (b *Builder) Lookup(key model.DimensionKey) (model.Dimension, bool) {
	d, ok := b.dims[key]
	return d, ok
}

// Parent returns the parent of d.
func (b *Builder) Parent(d model.Dimension) (model.Dimension, bool) {
	if d.Parent == nil {
		return model.Dimension{}, false
	}
	return b.Lookup(*d.Parent)
}

// InDimension reports whether key is an ancestor of d.
func (b *Builder) InDimension(d model.Dimension, key model.DimensionKey) bool {
	for p, ok := b.Parent(d); ok; p, ok = b.Parent(p) {
		if p.Key == key {
			return true
		}
	}
	return false
}

// All returns every dimension in registration order.
func (b *Builder) All() []model.Dimension {
	out := make([]model.Dimension, 0, len(b.order))
	for _, k := range b.order {
		out = append(out, b.dims[k])
	}
	return out
}

// Len returns the number of registered dimensions and objects.
func (b *Builder) Len() int {
	return len(b.order)
}

func (b *Builder) store(d model.Dimension) model.Dimension {
	if _, ok := b.dims[d.Key]; !ok {
		b.order = append(b.order, d.Key)
	}
	b.dims[d.Key] = d
	return d
}
