package services

import (
	"golang.org/x/crypto/bcrypt"
)

const (
	HashFactor = 10

	TokenTTLHours = 24
)

func hashPassword(password string) ([]byte, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), HashFactor)
	return bytes, err
}

func checkPassword(hashed []byte, password string) bool {
	return bcrypt.CompareHashAndPassword(hashed, []byte(password)) == nil
}
