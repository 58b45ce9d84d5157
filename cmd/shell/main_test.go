package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-shell/config"
)

func TestParseRemotes(t *testing.T) {
	remotes, err := parseRemotes(" remote1=http://localhost:8081 , remote2=http://localhost:8082/,")
	require.NoError(t, err)
	assert.Equal(t, []config.RemoteConfig{
		{Name: "remote1", URL: "http://localhost:8081"},
		{Name: "remote2", URL: "http://localhost:8082/"},
	}, remotes)

	_, err = parseRemotes("broken")
	assert.Error(t, err)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(envRemotes, "a=http://a.local")
	t.Setenv(envDataDir, t.TempDir())
	t.Setenv(envHoistAllowList, "/login, /logout")

	cfg := config.NewConfig()
	applyEnvOverrides(cfg)

	require.Len(t, cfg.Remotes, 1)
	assert.Equal(t, "a", cfg.Remotes[0].Name)
	assert.False(t, cfg.Storage.InMemory)
	assert.Equal(t, []string{"/login", "/logout"}, cfg.Routing.HoistAllowList)
	require.NoError(t, cfg.Validate())

	t.Log("✅ 环境变量覆盖测试通过")
}
