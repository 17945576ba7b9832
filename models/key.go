package models

import (
	"crypto"

	"github.com/lestrrat-go/jwx/jwk"
)

// PaddingScheme selects the asymmetric padding used by Encrypt and Decrypt.
type PaddingScheme string

const (
	PaddingOAEP     PaddingScheme = "OAEP"
	PaddingPKCS1v15 PaddingScheme = "PKCS1v15"
	PaddingPSS      PaddingScheme = "PSS"
)

type PublicKey interface {
	// Serialize returns the key as PEM-encoded SubjectPublicKeyInfo.
	Serialize() ([]byte, error)
	JWK() (jwk.Key, error)
	KeySize() int
	Encrypt(plaintext []byte, scheme PaddingScheme) ([]byte, error)
}

type PrivateKey interface {
	// Serialize returns the key as PEM-encoded PKCS8. A non-empty password
	// encrypts the key material with that password.
	Serialize(password string) ([]byte, error)
	PublicKey() PublicKey
	JWK() (jwk.Key, error)
	KeySize() int
	Signer() crypto.Signer
	Decrypt(ciphertext []byte, scheme PaddingScheme) ([]byte, error)
}

// MintArgs carries validated, algorithm-specific generation parameters.
// Zero-valued fields fall back to the algorithm's defaults.
type MintArgs interface {
	Validate() error
}

type KeyMinter interface {
	// PrepareMintArgs applies defaults to args and validates the result.
	// It is pure: no entropy is consumed and nothing is generated.
	PrepareMintArgs(args MintArgs) (MintArgs, error)

	// Mint generates a fresh private key. A nil args is legal and uses the
	// algorithm's defaults, as does any unset field in a non-nil args.
	Mint(args MintArgs) (PrivateKey, error)
}

type PrivateKeyGetter interface {
	GetPrivateKey() PrivateKey
}

type PublicKeyGetter interface {
	GetPublicKey() PublicKey
	GetPublicKeySet() (jwk.Set, error)
}

type KeysGetter interface {
	PrivateKeyGetter
	PublicKeyGetter
}

type KeysAdder interface {
	AddNewKey() error
}

type KeysRemover interface {
	RemoveOldestKey() error
}

type KeysUpdater interface {
	KeysAdder
	KeysRemover
}
