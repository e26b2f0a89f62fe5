package utils

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt with a fixed cost of 10. The salt is generated per call, so equal
// inputs never produce equal digests.
const hashCost = 10

// hashSlots bounds concurrent bcrypt work so a burst of create/login
// requests cannot starve the rest of the request handling.
var hashSlots = make(chan struct{}, 8)

func acquireHashSlot(ctx context.Context) error {
	select {
	case hashSlots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func releaseHashSlot() {
	<-hashSlots
}

func GenerateHash(ctx context.Context, payload string) (string, error) {
	if err := acquireHashSlot(ctx); err != nil {
		return "", err
	}
	defer releaseHashSlot()

	hashed, err := bcrypt.GenerateFromPassword([]byte(payload), hashCost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// VerifyHash reports whether plain matches hashed. The comparison is
// delegated to bcrypt, which is constant-time over the digest.
func VerifyHash(ctx context.Context, hashed, plain string) (bool, error) {
	if err := acquireHashSlot(ctx); err != nil {
		return false, err
	}
	defer releaseHashSlot()

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
