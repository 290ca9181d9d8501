package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringLiteral(t *testing.T) {
	v, p := String("hello", "default")
	assert.Equal(t, "hello", v)
	assert.Equal(t, LiteralFromConfig, p.Kind)
}

func TestStringDefaultOnAbsence(t *testing.T) {
	v, p := String(nil, "default")
	assert.Equal(t, "default", v)
	assert.Equal(t, DefaultNoConfigValue, p.Kind)
}

func TestStringEnvResolved(t *testing.T) {
	t.Setenv("HYDROGEN_TEST_JWT_SECRET", "abcdef123456")
	v, p := String("${env.HYDROGEN_TEST_JWT_SECRET}", "default")
	require.Equal(t, "abcdef123456", v)
	assert.Equal(t, EnvResolved, p.Kind)
	assert.Equal(t, "HYDROGEN_TEST_JWT_SECRET", p.EnvVar)
}

func TestStringEnvMissingUsesDefault(t *testing.T) {
	v, p := String("${env.HYDROGEN_TEST_DOES_NOT_EXIST}", "default")
	assert.Equal(t, "default", v)
	assert.Equal(t, EnvMissingUsedDefault, p.Kind)
}

func TestBoolCoercion(t *testing.T) {
	cases := []struct {
		node any
		want bool
	}{
		{"true", true}, {"TRUE", true}, {"1", true},
		{"false", false}, {"0", false}, {true, true}, {false, false},
	}
	for _, c := range cases {
		v, p := Bool(c.node, !c.want)
		assert.Equal(t, c.want, v)
		assert.Equal(t, LiteralFromConfig, p.Kind)
	}
}

func TestBoolInvalidUsesDefault(t *testing.T) {
	v, p := Bool("not-a-bool", true)
	assert.True(t, v)
	assert.Equal(t, DefaultNoConfigValue, p.Kind)
}

func TestIntRangeRejection(t *testing.T) {
	v, p := Int(float64(9999), 42, 0, 100)
	assert.Equal(t, int64(42), v)
	assert.Equal(t, DefaultNoConfigValue, p.Kind)
}

func TestIntWithinRange(t *testing.T) {
	v, p := Int(float64(50), 42, 0, 100)
	assert.Equal(t, int64(50), v)
	assert.Equal(t, LiteralFromConfig, p.Kind)
}

func TestSizeRejectsNegative(t *testing.T) {
	v, p := Size(float64(-5), 10)
	assert.Equal(t, uint64(10), v)
	assert.Equal(t, DefaultNoConfigValue, p.Kind)
}

func TestDoubleRejectsNaN(t *testing.T) {
	v, p := Double("NaN", 1.5)
	assert.Equal(t, 1.5, v)
	assert.Equal(t, DefaultNoConfigValue, p.Kind)
}

func TestIsSensitiveName(t *testing.T) {
	assert.True(t, IsSensitiveName("JWTSecret"))
	assert.True(t, IsSensitiveName("PayloadKey"))
	assert.True(t, IsSensitiveName("Password"))
	assert.False(t, IsSensitiveName("ServerName"))
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "abcde...", MaskValue("abcdef123456"))
	assert.Equal(t, "ab...", MaskValue("ab"))
}
