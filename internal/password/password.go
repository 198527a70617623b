package password

import "golang.org/x/crypto/bcrypt"

// Hasher hashes and verifies customer and employee passwords.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

type Bcrypt struct {
	cost int
}

func NewBcrypt(cost int) *Bcrypt {
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), b.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compares in constant time.
func (b *Bcrypt) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
