package core

import "golang.org/x/crypto/bcrypt"

// PlaintextVerifier compares credentials with exact, case-sensitive string
// equality. The stored password is kept verbatim, which is insecure by
// design; it only exists to match the legacy credential model. Swap in
// BcryptVerifier once stored passwords are hashed.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Verify(stored, presented string) error {
	if stored != presented {
		return ErrIncorrectPassword
	}
	return nil
}

// BcryptVerifier expects the stored credential to be a bcrypt hash.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(stored, presented string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)); err != nil {
		return ErrIncorrectPassword
	}
	return nil
}
