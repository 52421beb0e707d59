package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hashgen/internal/app"
	"hashgen/internal/crypto"
	"hashgen/internal/domain"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := app.LoadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, app.Config{
		Output:    "email_hashes.txt",
		VarName:   "valid_hashes",
		Label:     "DS217 Assignment 01",
		Algorithm: crypto.SHA256,
	}, cfg)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hashgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: out.txt\nlabel: Lab 3\n"), 0o600))
	t.Setenv("HASHGEN_VAR", "allowed")

	cfg, err := app.LoadConfig(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "out.txt", cfg.Output)
	assert.Equal(t, "Lab 3", cfg.Label)
	assert.Equal(t, "allowed", cfg.VarName)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := app.LoadConfig(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestLoadConfig_UnknownAlgorithm(t *testing.T) {
	v := viper.New()
	v.Set(app.KeyAlgorithm, "md5")

	_, err := app.LoadConfig(v, "")
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
}

func TestNewWire(t *testing.T) {
	w, err := app.NewWire(app.Config{Output: "x.txt", VarName: "v", Algorithm: crypto.SHA256}, nil)
	require.NoError(t, err)
	assert.Equal(t, "x.txt", w.Hashes.Path())

	rep := w.Digest.Process([]domain.Email{"alice.b@school.edu"})
	assert.Equal(t, domain.HashList{crypto.Digest("aliceb")}, rep.Hashes)

	_, err = app.NewWire(app.Config{VarName: "v"}, nil)
	assert.Error(t, err)
}
