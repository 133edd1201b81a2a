package scene

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextureRegistryLoadAssignsSlotsInOrder(t *testing.T) {
	backend := newFakeBackend()
	tr := NewTextureRegistry(backend)

	require.NoError(t, tr.Load("a.png", "first"))
	require.NoError(t, tr.Load("b.png", "second"))
	require.NoError(t, tr.Load("c.png", "third"))

	assert.Equal(t, 3, tr.Count())
	assert.Equal(t, int32(0), tr.SlotForTag("first"))
	assert.Equal(t, int32(1), tr.SlotForTag("second"))
	assert.Equal(t, int32(2), tr.SlotForTag("third"))
	assert.Equal(t, []string{"a.png", "b.png", "c.png"}, backend.created)
}

func TestTextureRegistryRejectsDuplicateTagBeforeUpload(t *testing.T) {
	backend := newFakeBackend()
	tr := NewTextureRegistry(backend)

	require.NoError(t, tr.Load("a.png", "wood"))

	err := tr.Load("b.png", "wood")
	require.ErrorIs(t, err, ErrDuplicateTag)

	// The rejected load must not have reached the GPU.
	assert.Equal(t, []string{"a.png"}, backend.created)
	assert.Equal(t, 1, tr.Count())
}

func TestTextureRegistryCapacity(t *testing.T) {
	backend := newFakeBackend()
	tr := NewTextureRegistry(backend)

	for i := 0; i < MaxTextures; i++ {
		require.NoError(t, tr.Load(fmt.Sprintf("tex%d.png", i), fmt.Sprintf("tag%d", i)))
	}

	err := tr.Load("one-too-many.png", "overflow")
	require.ErrorIs(t, err, ErrRegistryFull)
	assert.Len(t, backend.created, MaxTextures)
	assert.Equal(t, MaxTextures, tr.Count())
}

func TestTextureRegistryBindAllUsesSlotAsUnit(t *testing.T) {
	backend := newFakeBackend()
	tr := NewTextureRegistry(backend)

	require.NoError(t, tr.Load("a.png", "a"))
	require.NoError(t, tr.Load("b.png", "b"))

	tr.BindAll()

	require.Len(t, backend.binds, 2)
	assert.Equal(t, fakeBind{Handle: tr.HandleForTag("a"), Unit: 0}, backend.binds[0])
	assert.Equal(t, fakeBind{Handle: tr.HandleForTag("b"), Unit: 1}, backend.binds[1])
}

func TestTextureRegistryReleaseIsIdempotent(t *testing.T) {
	backend := newFakeBackend()
	tr := NewTextureRegistry(backend)

	require.NoError(t, tr.Load("a.png", "a"))
	require.NoError(t, tr.Load("b.png", "b"))

	tr.Release()
	tr.Release()

	assert.Len(t, backend.deleted, 2)
	assert.Equal(t, 0, tr.Count())
}

func TestTextureRegistryUnknownTag(t *testing.T) {
	tr := NewTextureRegistry(newFakeBackend())

	assert.Equal(t, uint32(0), tr.HandleForTag("nope"))
	assert.Equal(t, int32(-1), tr.SlotForTag("nope"))
}

func TestTextureRegistryFailedUploadLeavesRegistryUnchanged(t *testing.T) {
	backend := newFakeBackend()
	backend.failPaths["broken.png"] = true
	tr := NewTextureRegistry(backend)

	require.Error(t, tr.Load("broken.png", "broken"))
	assert.Equal(t, 0, tr.Count())
	assert.Equal(t, int32(-1), tr.SlotForTag("broken"))
}
