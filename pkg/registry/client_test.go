package registry

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshveil/identity/pkg/identity"
)

func TestClientFetchIdentity(t *testing.T) {
	srv := NewServer()
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	generated, err := identity.Generate(identity.C25519)
	require.NoError(t, err)
	srv.mu.Lock()
	srv.store[generated.Address().String()] = generated
	srv.mu.Unlock()

	client := NewClient(nil)
	fetched, err := client.FetchIdentity(ts.URL, generated.Address().String())
	require.NoError(t, err)

	assert.Equal(t, generated.Address(), fetched.Address())
	assert.False(t, fetched.HasPrivate())
}

func TestClientFetchIdentityUnknownAddressFails(t *testing.T) {
	srv := NewServer()
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	client := NewClient(nil)
	_, err := client.FetchIdentity(ts.URL, "ffffffffff")
	assert.Error(t, err)
}
