package pkg

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes with the given bcrypt cost; costs outside bcrypt's range fall back to its default.
func HashPassword(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return BytesToString(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
