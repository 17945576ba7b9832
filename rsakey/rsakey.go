package rsakey

import (
	"crypto"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"

	"github.com/lestrrat-go/jwx/jwk"
	"github.com/quickcert/keymint/models"
	"github.com/youmark/pkcs8"
	"golang.org/x/crypto/ssh"
)

const (
	pemTypePrivateKey          = "PRIVATE KEY"
	pemTypeEncryptedPrivateKey = "ENCRYPTED PRIVATE KEY"
	pemTypePublicKey           = "PUBLIC KEY"
	pemTypePKCS1PrivateKey     = "RSA PRIVATE KEY"
)

type PublicKey struct {
	key *rsa.PublicKey
}

func (k *PublicKey) Serialize() ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(k.key)
	if err != nil {
		return nil, err
	}

	return pem.EncodeToMemory(&pem.Block{
		Type:  pemTypePublicKey,
		Bytes: der,
	}), nil
}

// SerializeSSH returns the key in authorized_keys format.
func (k *PublicKey) SerializeSSH() ([]byte, error) {
	sshKey, err := ssh.NewPublicKey(k.key)
	if err != nil {
		return nil, err
	}

	return ssh.MarshalAuthorizedKey(sshKey), nil
}

func (k *PublicKey) JWK() (jwk.Key, error) {
	key, err := jwk.New(k.key)
	if err != nil {
		return nil, err
	}

	thumbprint, err := key.Thumbprint(crypto.SHA256)
	if err != nil {
		return nil, err
	}

	err = key.Set(jwk.KeyIDKey, fmt.Sprintf("%x", thumbprint))
	if err != nil {
		return nil, err
	}

	return key, nil
}

func (k *PublicKey) KeySize() int {
	return k.key.N.BitLen()
}

func (k *PublicKey) Encrypt(plaintext []byte, scheme models.PaddingScheme) ([]byte, error) {
	return nil, fmt.Errorf("%w: encrypt with %s padding", models.ErrUnsupportedOperation, scheme)
}

type PrivateKey struct {
	key *rsa.PrivateKey
}

// Serialize returns the key as PKCS8 PEM. A non-empty password encrypts the
// key material with a password-derived AES key.
func (k *PrivateKey) Serialize(password string) ([]byte, error) {
	if password != "" {
		der, err := pkcs8.ConvertPrivateKeyToPKCS8(k.key, []byte(password))
		if err != nil {
			return nil, err
		}

		return pem.EncodeToMemory(&pem.Block{
			Type:  pemTypeEncryptedPrivateKey,
			Bytes: der,
		}), nil
	}

	der, err := x509.MarshalPKCS8PrivateKey(k.key)
	if err != nil {
		return nil, err
	}

	return pem.EncodeToMemory(&pem.Block{
		Type:  pemTypePrivateKey,
		Bytes: der,
	}), nil
}

func (k *PrivateKey) PublicKey() models.PublicKey {
	return &PublicKey{key: &k.key.PublicKey}
}

func (k *PrivateKey) JWK() (jwk.Key, error) {
	key, err := jwk.New(k.key)
	if err != nil {
		return nil, err
	}

	thumbprint, err := key.Thumbprint(crypto.SHA256)
	if err != nil {
		return nil, err
	}

	err = key.Set(jwk.KeyIDKey, fmt.Sprintf("%x", thumbprint))
	if err != nil {
		return nil, err
	}

	return key, nil
}

func (k *PrivateKey) KeySize() int {
	return k.key.N.BitLen()
}

func (k *PrivateKey) Signer() crypto.Signer {
	return k.key
}

func (k *PrivateKey) Decrypt(ciphertext []byte, scheme models.PaddingScheme) ([]byte, error) {
	return nil, fmt.Errorf("%w: decrypt with %s padding", models.ErrUnsupportedOperation, scheme)
}

// Deserialize loads a private key from a PEM file. The password is required
// when the stored key is encrypted and must be empty when it is not.
func Deserialize(path string, password string) (*PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", models.ErrKeyLoad, path, err)
	}

	return Parse(data, password)
}

// Parse reconstructs a private key from PEM bytes. It accepts unencrypted
// PKCS8, password-encrypted PKCS8 and legacy PKCS1 blocks.
func Parse(data []byte, password string) (*PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", models.ErrKeyLoad)
	}

	switch block.Type {
	case pemTypeEncryptedPrivateKey:
		if password == "" {
			return nil, fmt.Errorf("%w: encrypted key requires a password", models.ErrKeyLoad)
		}

		key, err := pkcs8.ParsePKCS8PrivateKeyRSA(block.Bytes, []byte(password))
		if err != nil {
			return nil, fmt.Errorf("%w: decrypting key: %v", models.ErrKeyLoad, err)
		}

		return &PrivateKey{key: key}, nil
	case pemTypePrivateKey:
		parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing PKCS8 block: %v", models.ErrKeyLoad, err)
		}

		key, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: expected *rsa.PrivateKey, got %T", models.ErrKeyLoad, parsed)
		}

		return &PrivateKey{key: key}, nil
	case pemTypePKCS1PrivateKey:
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing PKCS1 block: %v", models.ErrKeyLoad, err)
		}

		return &PrivateKey{key: key}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected PEM block type %q", models.ErrKeyLoad, block.Type)
	}
}
