package inventory

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestService() (*Service, *fakeClient) {
	fc := newFakeClient()
	return NewService(fc.factory(), nil), fc
}

// failure asserts the dispatcher returned a bare failure envelope and
// hands it back for message checks.
func failure(t *testing.T, out any) Envelope {
	t.Helper()
	env, ok := out.(Envelope)
	require.True(t, ok, "expected failure envelope, got %T", out)
	require.False(t, env.Success)
	require.NotEmpty(t, env.Error)
	return env
}

func intp(v int) *int          { return &v }
func strp(v string) *string    { return &v }
func floatp(v float64) *float64 { return &v }
