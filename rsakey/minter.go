package rsakey

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"

	"github.com/quickcert/keymint/models"
)

const (
	DefaultKeySize        = 2048
	DefaultPublicExponent = 65537

	minKeySize = 2048
)

// MintArgs are the RSA generation parameters. Zero-valued fields fall back
// to the package defaults.
type MintArgs struct {
	KeySize        int
	PublicExponent int
}

func (args MintArgs) Validate() error {
	if args.KeySize != 0 && args.KeySize < minKeySize {
		return fmt.Errorf("%w: KeySize %d is below the %d bit minimum", models.ErrInvalidParameter, args.KeySize, minKeySize)
	}

	// crypto/rsa only generates keys with the F4 exponent.
	if args.PublicExponent != 0 && args.PublicExponent != DefaultPublicExponent {
		return fmt.Errorf("%w: PublicExponent must be %d, got %d", models.ErrInvalidParameter, DefaultPublicExponent, args.PublicExponent)
	}

	return nil
}

func (args MintArgs) withDefaults() MintArgs {
	if args.KeySize == 0 {
		args.KeySize = DefaultKeySize
	}

	if args.PublicExponent == 0 {
		args.PublicExponent = DefaultPublicExponent
	}

	return args
}

// Minter mints RSA key pairs. It holds no state and is safe for concurrent use.
type Minter struct{}

func NewMinter() *Minter {
	return &Minter{}
}

func (m *Minter) PrepareMintArgs(args models.MintArgs) (models.MintArgs, error) {
	rsaArgs, err := coerceArgs(args)
	if err != nil {
		return nil, err
	}

	rsaArgs = rsaArgs.withDefaults()

	err = rsaArgs.Validate()
	if err != nil {
		return nil, err
	}

	return rsaArgs, nil
}

func (m *Minter) Mint(args models.MintArgs) (models.PrivateKey, error) {
	prepared, err := m.PrepareMintArgs(args)
	if err != nil {
		return nil, err
	}

	rsaArgs := prepared.(MintArgs)

	key, err := rsa.GenerateKey(rand.Reader, rsaArgs.KeySize)
	if err != nil {
		return nil, err
	}

	return &PrivateKey{key: key}, nil
}

func coerceArgs(args models.MintArgs) (MintArgs, error) {
	if args == nil {
		return MintArgs{}, nil
	}

	switch v := args.(type) {
	case MintArgs:
		return v, nil
	case *MintArgs:
		if v == nil {
			return MintArgs{}, nil
		}

		return *v, nil
	default:
		return MintArgs{}, fmt.Errorf("%w: expected rsakey.MintArgs, got %T", models.ErrInvalidParameter, args)
	}
}
