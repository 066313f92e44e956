// Package password wraps bcrypt hashing for stored credentials.
package password

import "golang.org/x/crypto/bcrypt"

// Cost is the bcrypt work factor applied to every new hash. Raising it slows
// both registration and login; existing hashes keep the cost they were
// created with, since bcrypt embeds it in the output string.
const Cost = 12

// Hash derives a salted bcrypt hash from the plaintext. Each call generates
// a fresh salt, so hashing the same input twice yields different strings.
func Hash(plaintext string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), Cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plaintext matches the stored hash. A wrong password
// is not an error condition, it simply returns false; bcrypt performs the
// comparison in constant time.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
