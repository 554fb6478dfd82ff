package utils

import (
	"fmt"
	"math/rand"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(p string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(p), 14)
	return string(bytes), err
}

func CheckPassword(hash, pass string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass))
	return err == nil
}

// GenerateReferenceNo returns a 17-digit payment reference number.
func GenerateReferenceNo() string {
	return fmt.Sprintf("%d", rand.Int63n(9e16)+1e16)
}
