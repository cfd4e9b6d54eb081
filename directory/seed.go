package directory

import (
	"fmt"
	"math/rand"
)

var demoNames = []string{"Eric", "Linus", "Michelle", "Rogan", "Lily"}

// SeedDemo returns a store pre-populated with demo accounts carrying random
// emails and random throwaway passwords, plus one account ("Neo") pinned at
// identifier 1 so example reset links are easy to construct by hand.
//
// SeedDemo may return an error when input validation, dependency calls, or security checks fail.
func SeedDemo(hash HashFunc) (*Store, error) {
	store := NewStore()

	for _, name := range demoNames {
		if err := addDemoAccount(store, rand.Uint64(), name, hash); err != nil {
			return nil, err
		}
	}
	if err := addDemoAccount(store, 1, "Neo", hash); err != nil {
		return nil, err
	}

	return store, nil
}

func addDemoAccount(store *Store, id uint64, name string, hash HashFunc) error {
	// Demo emails are drawn from a small space; redraw on the rare clash.
	for {
		account, err := demoAccount(id, name, hash)
		if err != nil {
			return err
		}
		err = store.Add(account)
		if err == ErrDuplicateEmail {
			continue
		}
		return err
	}
}

func demoAccount(id uint64, name string, hash HashFunc) (*Account, error) {
	passwordHash, err := hash(fmt.Sprintf("%d", rand.Uint64()))
	if err != nil {
		return nil, err
	}

	return &Account{
		ID:           id,
		Name:         name,
		Email:        fmt.Sprintf("user-%d@spookysoftware.dev", rand.Intn(65536)),
		PasswordHash: passwordHash,
	}, nil
}
