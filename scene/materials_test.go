package scene

import (
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialRegistryRegisterAndLookup(t *testing.T) {
	mr := NewMaterialRegistry()

	metal := ObjectMaterial{
		Tag:           "metal",
		DiffuseColor:  gglm.NewVec3(0.6, 0.6, 0.6),
		SpecularColor: gglm.NewVec3(0.9, 0.9, 0.9),
		Shininess:     64,
	}
	require.NoError(t, mr.Register(metal))

	got, ok := mr.Lookup("metal")
	require.True(t, ok)
	assert.Equal(t, metal, got)
	assert.Equal(t, 1, mr.Count())
}

func TestMaterialRegistryLookupMiss(t *testing.T) {
	mr := NewMaterialRegistry()

	// Empty registry short-circuits.
	_, ok := mr.Lookup("anything")
	assert.False(t, ok)

	require.NoError(t, mr.Register(ObjectMaterial{Tag: "wood"}))

	_, ok = mr.Lookup("stone")
	assert.False(t, ok)
}

func TestMaterialRegistryRejectsDuplicateTag(t *testing.T) {
	mr := NewMaterialRegistry()

	first := ObjectMaterial{Tag: "wood", Shininess: 2}
	require.NoError(t, mr.Register(first))

	err := mr.Register(ObjectMaterial{Tag: "wood", Shininess: 99})
	require.ErrorIs(t, err, ErrDuplicateTag)

	// The original registration stays in place.
	got, ok := mr.Lookup("wood")
	require.True(t, ok)
	assert.Equal(t, float32(2), got.Shininess)
	assert.Equal(t, 1, mr.Count())
}

func TestMaterialRegistryRejectsEmptyTag(t *testing.T) {
	mr := NewMaterialRegistry()
	assert.Error(t, mr.Register(ObjectMaterial{}))
}
