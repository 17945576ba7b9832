package keystore

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/jwk"
	"github.com/quickcert/keymint/models"
)

type Options struct {
	Minter   models.KeyMinter
	MintArgs models.MintArgs
}

func (opts Options) Validate() error {
	if opts.Minter == nil {
		return fmt.Errorf("Minter is nil")
	}

	return nil
}

type entry struct {
	label string
	key   models.PrivateKey
}

type handler struct {
	sync.RWMutex
	minter  models.KeyMinter
	args    models.MintArgs
	entries []entry
}

// NewHandler returns a keystore holding one freshly minted key.
func NewHandler(opts Options) (*handler, error) {
	err := opts.Validate()
	if err != nil {
		return nil, err
	}

	h := &handler{
		minter:  opts.Minter,
		args:    opts.MintArgs,
		entries: []entry{},
	}

	err = h.AddNewKey()
	if err != nil {
		return nil, err
	}

	return h, nil
}

func (h *handler) AddNewKey() error {
	key, err := h.minter.Mint(h.args)
	if err != nil {
		return err
	}

	h.Lock()

	h.entries = append(h.entries, entry{
		label: uuid.NewString(),
		key:   key,
	})

	h.Unlock()

	return nil
}

func (h *handler) RemoveOldestKey() error {
	h.RLock()
	entriesLen := len(h.entries)
	h.RUnlock()

	if entriesLen <= 1 {
		return fmt.Errorf("Keys length smaller or equal 1: %d", entriesLen)
	}

	h.Lock()
	h.entries = h.entries[1:]
	h.Unlock()

	return nil
}

func (h *handler) GetPrivateKey() models.PrivateKey {
	h.RLock()

	lastEntryIndex := len(h.entries) - 1
	privKey := h.entries[lastEntryIndex].key

	h.RUnlock()

	return privKey
}

func (h *handler) GetPublicKey() models.PublicKey {
	h.RLock()

	lastEntryIndex := len(h.entries) - 1
	privKey := h.entries[lastEntryIndex].key

	h.RUnlock()

	return privKey.PublicKey()
}

func (h *handler) GetPublicKeySet() (jwk.Set, error) {
	keySet := jwk.NewSet()

	h.RLock()
	defer h.RUnlock()

	for _, e := range h.entries {
		pubKey, err := e.key.PublicKey().JWK()
		if err != nil {
			return nil, err
		}

		keySet.Add(pubKey)
	}

	return keySet, nil
}

// Labels returns the labels of all held keys, oldest first.
func (h *handler) Labels() []string {
	h.RLock()
	defer h.RUnlock()

	labels := make([]string, 0, len(h.entries))
	for _, e := range h.entries {
		labels = append(labels, e.label)
	}

	return labels
}
