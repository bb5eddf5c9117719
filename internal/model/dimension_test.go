package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDimensionKey(t *testing.T) {
	simple := SimpleKey(6)
	assert.False(t, simple.IsObject())
	assert.Equal(t, "6", simple.String())
	assert.Equal(t, 6, simple.Number())

	obj := ObjectKey(6, 47)
	assert.True(t, obj.IsObject())
	assert.Equal(t, "6.47", obj.String())
	assert.Equal(t, 6, obj.Super())
	assert.Equal(t, 47, obj.Number())
}

func TestDimensionKeyNoCollision(t *testing.T) {
	// "1.12" and "11.2" must stay distinct, as must object 0.5 and dimension 5.
	keys := map[DimensionKey]bool{
		ObjectKey(1, 12): true,
		ObjectKey(11, 2): true,
		ObjectKey(0, 5):  true,
		SimpleKey(5):     true,
	}
	assert.Len(t, keys, 4)
}

func TestNewDimensionCopiesParent(t *testing.T) {
	parent := SimpleKey(1)
	d := NewDimension(SimpleKey(2), "cost-carrier", &parent)
	parent = SimpleKey(9)

	assert.True(t, d.HasParent())
	assert.Equal(t, SimpleKey(1), *d.Parent)
	assert.Equal(t, 2, d.Number())

	assert.False(t, NewDimension(SimpleKey(6), "project", nil).HasParent())
}
