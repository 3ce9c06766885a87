package der

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveUnpackConfig_DefaultsToStrict(t *testing.T) {
	cfg := resolveUnpackConfig(nil)
	require.True(t, cfg.strictTrailing)
}

func TestResolveUnpackConfig_LenientOverridesDefault(t *testing.T) {
	cfg := resolveUnpackConfig([]UnpackOption{LenientTrailingData()})
	require.False(t, cfg.strictTrailing)
}

func TestResolveUnpackConfig_ExplicitStrictIsNoop(t *testing.T) {
	cfg := resolveUnpackConfig([]UnpackOption{StrictTrailingData()})
	require.True(t, cfg.strictTrailing)
}

func TestResolveUnpackConfig_LastOptionWins(t *testing.T) {
	cfg := resolveUnpackConfig([]UnpackOption{LenientTrailingData(), StrictTrailingData()})
	require.True(t, cfg.strictTrailing)
}
