package keystore

import (
	"testing"

	"github.com/google/uuid"
	"github.com/quickcert/keymint/rsakey"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *handler {
	t.Helper()

	keyHandler, err := NewHandler(Options{
		Minter:   rsakey.NewMinter(),
		MintArgs: rsakey.MintArgs{},
	})
	require.NoError(t, err)

	return keyHandler
}

func TestOptionsValidate(t *testing.T) {
	_, err := NewHandler(Options{})
	require.Error(t, err)
}

func TestNewHandler(t *testing.T) {
	keyHandler := newTestHandler(t)

	require.Equal(t, 1, len(keyHandler.entries))
}

func TestAddNewKey(t *testing.T) {
	keyHandler := newTestHandler(t)

	err := keyHandler.AddNewKey()
	require.NoError(t, err)

	require.Equal(t, 2, len(keyHandler.entries))
}

func TestRemoveOldestKey(t *testing.T) {
	keyHandler := newTestHandler(t)

	err := keyHandler.RemoveOldestKey()
	require.Error(t, err)

	err = keyHandler.AddNewKey()
	require.NoError(t, err)

	require.Equal(t, 2, len(keyHandler.entries))

	secondEntry := keyHandler.entries[1]

	err = keyHandler.RemoveOldestKey()
	require.NoError(t, err)

	require.Equal(t, secondEntry, keyHandler.entries[0])
}

func TestGetPrivateKey(t *testing.T) {
	keyHandler := newTestHandler(t)

	require.Equal(t, keyHandler.entries[0].key, keyHandler.GetPrivateKey())

	err := keyHandler.AddNewKey()
	require.NoError(t, err)

	require.Equal(t, keyHandler.entries[1].key, keyHandler.GetPrivateKey())

	err = keyHandler.RemoveOldestKey()
	require.NoError(t, err)

	require.Equal(t, keyHandler.entries[0].key, keyHandler.GetPrivateKey())
}

func TestGetPublicKey(t *testing.T) {
	keyHandler := newTestHandler(t)

	wantBytes, err := keyHandler.entries[0].key.PublicKey().Serialize()
	require.NoError(t, err)

	gotBytes, err := keyHandler.GetPublicKey().Serialize()
	require.NoError(t, err)

	require.Equal(t, wantBytes, gotBytes)

	err = keyHandler.AddNewKey()
	require.NoError(t, err)

	wantBytes, err = keyHandler.entries[1].key.PublicKey().Serialize()
	require.NoError(t, err)

	gotBytes, err = keyHandler.GetPublicKey().Serialize()
	require.NoError(t, err)

	require.Equal(t, wantBytes, gotBytes)
}

func TestGetPublicKeySet(t *testing.T) {
	keyHandler := newTestHandler(t)

	keySet, err := keyHandler.GetPublicKeySet()
	require.NoError(t, err)

	require.Equal(t, 1, keySet.Len())

	firstKey, ok := keySet.Get(0)
	require.True(t, ok)

	wantJWK, err := keyHandler.entries[0].key.PublicKey().JWK()
	require.NoError(t, err)

	require.Equal(t, wantJWK.KeyID(), firstKey.KeyID())

	err = keyHandler.AddNewKey()
	require.NoError(t, err)

	keySet, err = keyHandler.GetPublicKeySet()
	require.NoError(t, err)

	require.Equal(t, 2, keySet.Len())
}

func TestLabels(t *testing.T) {
	keyHandler := newTestHandler(t)

	labels := keyHandler.Labels()
	require.Equal(t, 1, len(labels))

	_, err := uuid.Parse(labels[0])
	require.NoError(t, err)

	err = keyHandler.AddNewKey()
	require.NoError(t, err)

	labels = keyHandler.Labels()
	require.Equal(t, 2, len(labels))
	require.NotEqual(t, labels[0], labels[1])
}
