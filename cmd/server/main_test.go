package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "accounts-be", cmd.Use)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
}

func TestConfigPath(t *testing.T) {
	t.Cleanup(func() { configFile = "" })

	t.Setenv("CONFIG_FILE", "from-env.yaml")
	configFile = ""
	assert.Equal(t, "from-env.yaml", configPath())

	configFile = "from-flag.yaml"
	assert.Equal(t, "from-flag.yaml", configPath())
}

func TestServe_MissingPort(t *testing.T) {
	t.Cleanup(func() { configFile = "" })
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/accounts")
	t.Setenv("JWT_SECRET", "secret")

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"serve"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}

func TestMigrate_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"migrate"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}
