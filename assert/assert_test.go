//go:build !release

package assert

import (
	"bytes"
	"testing"

	"github.com/bloeys/glscaffold/logging"
	"github.com/stretchr/testify/require"
)

func TestT(t *testing.T) {

	var buf bytes.Buffer
	logging.SetOutput(&buf)

	require.NotPanics(t, func() { T(true, "never shown") })
	require.Empty(t, buf.String())

	require.PanicsWithValue(t, "Assert failed: bad value 7", func() { T(false, "bad value %d", 7) })
	require.Contains(t, buf.String(), "Assert failed: bad value 7")
}
