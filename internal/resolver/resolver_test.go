package resolver

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbckr/artifact-info/internal/buildmeta"
)

var _ buildmeta.CNAMELookup = (*net.Resolver)(nil)

func TestNew_PlatformResolver(t *testing.T) {
	t.Setenv("ALL_PROXY", "")
	for _, u := range []string{"", "http://proxy.example.com:8080", "https://proxy.example.com:8080"} {
		r, err := New(u)
		require.NoError(t, err, "proxy=%s", u)
		assert.NotNil(t, r)
		assert.Nil(t, r.Dial, "proxy=%s should use the platform resolver", u)
	}
}

func TestNew_Socks5(t *testing.T) {
	r, err := New("socks5://127.0.0.1:1080")
	require.NoError(t, err)
	assert.NotNil(t, r.Dial)
	assert.True(t, r.PreferGo, "socks5 resolver must use the Go resolver")
}

func TestNew_AllProxy(t *testing.T) {
	t.Setenv("ALL_PROXY", "socks5://127.0.0.1:1080")
	r, err := New("")
	require.NoError(t, err)
	assert.NotNil(t, r.Dial)

	t.Setenv("ALL_PROXY", "http://proxy.example.com:8080")
	r, err = New("")
	require.NoError(t, err)
	assert.Nil(t, r.Dial)
}
