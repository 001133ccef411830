package utils

import "golang.org/x/crypto/bcrypt" // Password hashing

// HashPassword hashes a plain-text password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost) // Hash with default cost
	return string(hash), err                                                       // Return hash and error
}

// CheckPasswordHash verifies a plain-text password against a stored hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) // Compare hash and password
	return err == nil                                                    // True when they match
}
