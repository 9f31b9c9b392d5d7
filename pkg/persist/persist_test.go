package persist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshveil/identity/pkg/identity"
)

func TestSaveLoadRoundTripWithPrivate(t *testing.T) {
	a, err := identity.Generate(identity.C25519)
	require.NoError(t, err)
	b, err := identity.Generate(identity.C25519)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "identities.bin")
	require.NoError(t, Save(path, []*identity.Identity{a, b}, true))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, a.Marshal(true), loaded[0].Marshal(true))
	assert.Equal(t, b.Marshal(true), loaded[1].Marshal(true))
	assert.True(t, loaded[0].HasPrivate())
}

func TestSaveLoadRoundTripWithoutPrivate(t *testing.T) {
	a, err := identity.Generate(identity.C25519)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "public.bin")
	require.NoError(t, Save(path, []*identity.Identity{a}, false))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.False(t, loaded[0].HasPrivate())
	assert.Equal(t, a.PublicBytes(), loaded[0].PublicBytes())
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.bin")
	require.NoError(t, os.WriteFile(path, []byte("not zstd data"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}
