package model

import (
	"fmt"
	"strconv"
)

// DimensionKey identifies a dimension in a registry. A key is either a plain
// dimension number or an object number scoped by its super dimension.
type DimensionKey struct {
	object bool
	super  int
	number int
}

// SimpleKey returns the key of dimension number.
func SimpleKey(number int) DimensionKey {
	return DimensionKey{number: number}
}

// ObjectKey returns the key of object number under dimension super.
func ObjectKey(super, number int) DimensionKey {
	return DimensionKey{object: true, super: super, number: number}
}

// IsObject reports whether k is a composite (super, number) key.
func (k DimensionKey) IsObject() bool { return k.object }

// Number returns the dimension or object number.
func (k DimensionKey) Number() int { return k.number }

// Super returns the super dimension number of an object key, 0 otherwise.
func (k DimensionKey) Super() int { return k.super }

// String renders "n" for simple keys and "super.n" for object keys.
func (k DimensionKey) String() string {
	if k.object {
		return fmt.Sprintf("%d.%d", k.super, k.number)
	}
	return strconv.Itoa(k.number)
}

// Dimension is a classification axis, or an object within one.
// Parent refers to another entry of the same registry by key.
type Dimension struct {
	Key         DimensionKey
	Description string
	Parent      *DimensionKey
}

// NewDimension returns a Dimension. A nil parent means top-level.
func NewDimension(key DimensionKey, description string, parent *DimensionKey) Dimension {
	d := Dimension{Key: key, Description: description}
	if parent != nil {
		p := *parent
		d.Parent = &p
	}
	return d
}

// Number returns the dimension or object number.
func (d Dimension) Number() int { return d.Key.Number() }

// HasParent reports whether d belongs to another dimension.
func (d Dimension) HasParent() bool { return d.Parent != nil }
