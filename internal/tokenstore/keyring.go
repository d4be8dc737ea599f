package tokenstore

import (
	"errors"

	"github.com/zalando/go-keyring"
)

const account = "auth-token"

// Keyring stores the session token in the OS credential manager
// (Keychain, Secret Service, or the Windows credential store).
type Keyring struct {
	service string
}

// NewKeyring returns a Store backed by the OS credential manager under
// the given service name.
func NewKeyring(service string) *Keyring {
	return &Keyring{service: service}
}

func (k *Keyring) Set(token string) error {
	return keyring.Set(k.service, account, token)
}

func (k *Keyring) Get() (string, error) {
	token, err := keyring.Get(k.service, account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return token, nil
}

func (k *Keyring) Delete() error {
	if err := keyring.Delete(k.service, account); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}
