package passhash

import (
	"github.com/GehirnInc/crypt/sha512_crypt"
)

// SHA512 produces a crypt(3) $6$ hash suitable for the shadow password field.
// A random salt is generated per call.
func SHA512(password string) (string, error) {
	return sha512_crypt.New().Generate([]byte(password), nil)
}
