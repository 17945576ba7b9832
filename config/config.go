package config

import (
	"github.com/cristalhq/aconfig"
	"github.com/quickcert/keymint/rsakey"
)

type Config struct {
	KeySize        int    `env:"KEY_SIZE" default:"2048" usage:"RSA key size in bits"`
	PublicExponent int    `env:"KEY_PUBLIC_EXPONENT" default:"65537" usage:"RSA public exponent"`
	Password       string `env:"KEY_PASSWORD" default:"" usage:"password used to encrypt serialized private keys"`
}

func NewConfig() (Config, error) {
	var cfg Config

	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		SkipDefaults: false,
		SkipFiles:    true,
		SkipEnv:      false,
		SkipFlags:    true,
		EnvPrefix:    "KEYMINT",
		FlagPrefix:   "",
		Files:        []string{},
		FileDecoders: map[string]aconfig.FileDecoder{},
	})

	err := loader.Load()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) MintArgs() rsakey.MintArgs {
	return rsakey.MintArgs{
		KeySize:        c.KeySize,
		PublicExponent: c.PublicExponent,
	}
}
