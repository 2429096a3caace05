//go:build !fixedstr_debug

package contract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultHandlerIsSilent(t *testing.T) {
	require.Nil(t, defaultHandler())

	prev := SetHandler(nil)
	defer SetHandler(prev)
	require.Nil(t, prev, "release build installs no handler at init")
	require.NotPanics(t, func() { Expects(false, "op", "cond") })
}
