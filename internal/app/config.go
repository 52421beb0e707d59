package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"hashgen/internal/crypto"
	"hashgen/internal/store"
)

// EnvPrefix prefixes environment overrides, e.g. HASHGEN_OUTPUT.
const EnvPrefix = "HASHGEN"

// Config keys.
const (
	KeyOutput    = "output"
	KeyVarName   = "var"
	KeyLabel     = "label"
	KeyAlgorithm = "algorithm"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Output    string           // hash file path, e.g. email_hashes.txt
	VarName   string           // list variable in the declaration
	Label     string           // assignment named in the header
	Algorithm crypto.Algorithm // digest, sha256 unless overridden
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyOutput, store.DefaultFilename)
	v.SetDefault(KeyVarName, store.DefaultVarName)
	v.SetDefault(KeyLabel, store.DefaultLabel)
	v.SetDefault(KeyAlgorithm, string(crypto.SHA256))
}

// LoadConfig reads configFile (if set) into v, enables HASHGEN_* overrides
// and returns the resulting Config. Flags must already be bound to v.
func LoadConfig(v *viper.Viper, configFile string) (Config, error) {
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.Is(err, os.ErrNotExist) || errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config '%s' not found", configFile)
			}
			return Config{}, fmt.Errorf("config read '%s': %w", configFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	algo, err := crypto.ParseAlgorithm(v.GetString(KeyAlgorithm))
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Output:    v.GetString(KeyOutput),
		VarName:   v.GetString(KeyVarName),
		Label:     v.GetString(KeyLabel),
		Algorithm: algo,
	}
	return cfg, cfg.Validate()
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Output) == "" {
		return errors.New("`output` is empty")
	}
	if strings.TrimSpace(c.VarName) == "" {
		return errors.New("`var` is empty")
	}
	if _, err := crypto.ParseAlgorithm(string(c.Algorithm)); err != nil {
		return err
	}
	return nil
}
