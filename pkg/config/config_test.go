package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvDefault(t *testing.T) {
	t.Setenv("STOREFRONT_TEST_STR", "")
	assert.Equal(t, "def", EnvDefault("STOREFRONT_TEST_STR", "def"))

	t.Setenv("STOREFRONT_TEST_STR", "value")
	assert.Equal(t, "value", EnvDefault("STOREFRONT_TEST_STR", "def"))
}

func TestFirstEnv(t *testing.T) {
	t.Setenv("STOREFRONT_A", "")
	t.Setenv("STOREFRONT_B", "b")
	assert.Equal(t, "b", FirstEnv("def", "STOREFRONT_A", "STOREFRONT_B"))

	t.Setenv("STOREFRONT_B", "")
	assert.Equal(t, "def", FirstEnv("def", "STOREFRONT_A", "STOREFRONT_B"))
}

func TestEnvIntDefault(t *testing.T) {
	t.Setenv("STOREFRONT_TEST_INT", "42")
	assert.Equal(t, 42, EnvIntDefault("STOREFRONT_TEST_INT", 1))

	t.Setenv("STOREFRONT_TEST_INT", "nope")
	assert.Equal(t, 1, EnvIntDefault("STOREFRONT_TEST_INT", 1))
}

func TestEnvBoolDefault(t *testing.T) {
	t.Setenv("STOREFRONT_TEST_BOOL", "true")
	assert.True(t, EnvBoolDefault("STOREFRONT_TEST_BOOL", false))

	t.Setenv("STOREFRONT_TEST_BOOL", "maybe")
	assert.False(t, EnvBoolDefault("STOREFRONT_TEST_BOOL", false))
}

func TestCSV(t *testing.T) {
	assert.Nil(t, CSV(""))
	assert.Equal(t, []string{"a:9092", "b:9092"}, CSV(" a:9092 , ,b:9092"))
}

func TestRequireNonEmpty(t *testing.T) {
	require.NoError(t, RequireNonEmpty("A", "x", "B", "y"))

	err := RequireNonEmpty("A", "", "B", "y", "C", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "A")
	assert.Contains(t, err.Error(), "C")
	assert.Equal(t, []string{"A", "C"}, MissingVars("A", "", "B", "y", "C", ""))
}
