// cmd/genhash/main.go — Imprime el hash bcrypt de una contraseña.
// Uso: go run cmd/genhash/main.go <password>
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("uso: genhash <password>")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), 12)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}
	fmt.Println(string(hash))
}
