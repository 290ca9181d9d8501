package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAllDefaultsLaunch covers spec scenario 1: no config file, no env
// overrides, load_config(none) succeeds with the documented defaults.
func TestAllDefaultsLaunch(t *testing.T) {
	t.Chdir(t.TempDir())
	os.Unsetenv("HYDROGEN_CONFIG")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, int64(5000), cfg.WebServer.Port)
	assert.Equal(t, int64(5001), cfg.WebSocket.Port)
	assert.True(t, cfg.Terminal.Enabled)
	assert.Equal(t, int64(0), cfg.Databases.ConnectionCount)
}

// TestEnvResolvedSecret covers spec scenario 2: a JWTSecret referencing
// ${env.JWT_SECRET} resolves to the full environment value.
func TestEnvResolvedSecret(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"API": {"JWTSecret": "${env.JWT_SECRET}"}}`)
	t.Setenv("JWT_SECRET", "abcdef123456")

	cfg, err := Load(filepath.Join(dir, "hydrogen.json"))
	require.NoError(t, err)
	assert.Equal(t, "abcdef123456", cfg.API.JWTSecret)
}

// TestEnvMissingUsesDefault covers spec scenario 3: the same config with
// JWT_SECRET unset falls back to the compiled-in default.
func TestEnvMissingUsesDefault(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"API": {"JWTSecret": "${env.JWT_SECRET_UNSET_FOR_TEST}"}}`)

	cfg, err := Load(filepath.Join(dir, "hydrogen.json"))
	require.NoError(t, err)
	assert.Equal(t, "hydrogen-default-jwt-secret", cfg.API.JWTSecret)
}

// TestReservedPortsAccepted covers spec scenario 6's first half: a valid,
// non-duplicated ReservedPorts list within [StartPort, EndPort] is accepted.
func TestReservedPortsAccepted(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"Network": {"PortAllocation": {"StartPort": 1024, "EndPort": 2048, "ReservedPorts": [1024, 2048, 1500]}}}`)

	cfg, err := Load(filepath.Join(dir, "hydrogen.json"))
	require.NoError(t, err)
	assert.Equal(t, []int64{1024, 2048, 1500}, cfg.Network.PortAlloc.ReservedPorts)
}

// TestReservedPortsDuplicateRejectsSection covers spec scenario 6's second
// half: adding a duplicate causes the Network section, and thus the whole
// load, to fail.
func TestReservedPortsDuplicateRejectsSection(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"Network": {"PortAllocation": {"StartPort": 1024, "EndPort": 2048, "ReservedPorts": [1024, 2048, 1500, 1500]}}}`)

	_, err := Load(filepath.Join(dir, "hydrogen.json"))
	assert.ErrorIs(t, err, ErrSectionLoad)
}

// TestPortBoundaryAcceptedAndRejected covers the boundary behaviour: EndPort
// before StartPort is rejected, a reserved port equal to StartPort or
// EndPort is accepted, and a reserved port outside the range is rejected.
func TestPortBoundaryAcceptedAndRejected(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"Network": {"PortAllocation": {"StartPort": 2000, "EndPort": 1000}}}`)

	_, err := Load(filepath.Join(dir, "hydrogen.json"))
	assert.ErrorIs(t, err, ErrSectionLoad)

	dirInRange := t.TempDir()
	writeConfig(t, dirInRange, `{"Network": {"PortAllocation": {"StartPort": 1000, "EndPort": 2000, "ReservedPorts": [1000, 2000]}}}`)
	cfg, err := Load(filepath.Join(dirInRange, "hydrogen.json"))
	require.NoError(t, err)
	assert.Equal(t, []int64{1000, 2000}, cfg.Network.PortAlloc.ReservedPorts)

	dirOutside := t.TempDir()
	writeConfig(t, dirOutside, `{"Network": {"PortAllocation": {"StartPort": 1000, "EndPort": 2000, "ReservedPorts": [2001]}}}`)
	_, err = Load(filepath.Join(dirOutside, "hydrogen.json"))
	assert.ErrorIs(t, err, ErrSectionLoad)
}

// TestDatabaseConnectionsAcceptsArrayOrObject covers the §4.2 cross-cutting
// rule: Connections may be a JSON array or an object keyed by name.
func TestDatabaseConnectionsAcceptsArrayOrObject(t *testing.T) {
	dirArray := t.TempDir()
	writeConfig(t, dirArray, `{"Databases": {"Connections": [{"Name": "primary", "Host": "db1"}]}}`)
	cfgArray, err := Load(filepath.Join(dirArray, "hydrogen.json"))
	require.NoError(t, err)
	require.Len(t, cfgArray.Databases.Connections, 1)
	assert.Equal(t, "primary", cfgArray.Databases.Connections[0].Name)

	dirObj := t.TempDir()
	writeConfig(t, dirObj, `{"Databases": {"Connections": {"primary": {"Host": "db1"}}}}`)
	cfgObj, err := Load(filepath.Join(dirObj, "hydrogen.json"))
	require.NoError(t, err)
	require.Len(t, cfgObj.Databases.Connections, 1)
	assert.Equal(t, "primary", cfgObj.Databases.Connections[0].Name)
}

// TestDatabaseConnectionsCapAtFive covers the "at most 5 entries" rule.
func TestDatabaseConnectionsCapAtFive(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"Databases": {"Connections": [
		{"Name": "a"}, {"Name": "b"}, {"Name": "c"}, {"Name": "d"}, {"Name": "e"}, {"Name": "f"}
	]}}`)
	cfg, err := Load(filepath.Join(dir, "hydrogen.json"))
	require.NoError(t, err)
	assert.Len(t, cfg.Databases.Connections, 5)
	assert.Equal(t, int64(5), cfg.Databases.ConnectionCount)
}

// TestAvailableInterfacesSynthesizedWhenAbsent covers the §4.2 rule that an
// absent Available object synthesizes the {name:"all", available:true}
// singleton.
func TestAvailableInterfacesSynthesizedWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{}`)
	cfg, err := Load(filepath.Join(dir, "hydrogen.json"))
	require.NoError(t, err)
	assert.Equal(t, []AvailableInterface{{Name: "all", Available: true}}, cfg.Network.Available)
}

// TestMDNSServiceTxtRecordsAcceptsStringOrArray covers the §4.2 rule that a
// service's TxtRecords may be a single string or an array of strings.
func TestMDNSServiceTxtRecordsAcceptsStringOrArray(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"mDNSServer": {"Services": [
		{"Name": "svc-a", "TxtRecords": "single"},
		{"Name": "svc-b", "TxtRecords": ["one", "two"]}
	]}}`)
	cfg, err := Load(filepath.Join(dir, "hydrogen.json"))
	require.NoError(t, err)
	require.Len(t, cfg.MDNSServer.Services, 2)
	assert.Equal(t, []string{"single"}, cfg.MDNSServer.Services[0].TxtRecords)
	assert.Equal(t, []string{"one", "two"}, cfg.MDNSServer.Services[1].TxtRecords)
}

// TestNoSourceFoundSucceedsWithDefaults covers the boundary behaviour: no
// HYDROGEN_CONFIG, no cmdline path, none of the default search paths
// readable — load succeeds with an all-defaults AppConfig.
func TestNoSourceFoundSucceedsWithDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	os.Unsetenv("HYDROGEN_CONFIG")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "hydrogen", cfg.Server.ServerName)
}

// TestExplicitUnreadablePathFails covers ConfigUnreadable: an explicitly
// named source that does not exist is fatal.
func TestExplicitUnreadablePathFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.ErrorIs(t, err, ErrConfigUnreadable)
}

// TestExplicitMalformedPathFails covers ConfigMalformed.
func TestExplicitMalformedPathFails(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{not valid json`)
	_, err := Load(filepath.Join(dir, "hydrogen.json"))
	assert.ErrorIs(t, err, ErrConfigMalformed)
}

// TestUnknownTopLevelKeyIgnored covers the "unknown top-level keys are
// ignored with a warning" rule — the load still succeeds.
func TestUnknownTopLevelKeyIgnored(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"NotARealSection": {"foo": "bar"}}`)
	_, err := Load(filepath.Join(dir, "hydrogen.json"))
	assert.NoError(t, err)
}

func writeConfig(t *testing.T, dir, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hydrogen.json"), []byte(contents), 0o644))
}
