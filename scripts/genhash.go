// Command genhash prints bcrypt hashes for seeding users by hand.
//
//	go run ./scripts -password secret [-password other]
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"jobboard-backend/pkg/auth"
)

type passwordList []string

func (p *passwordList) String() string { return strings.Join(*p, ",") }

func (p *passwordList) Set(v string) error {
	*p = append(*p, v)
	return nil
}

func main() {
	var passwords passwordList
	flag.Var(&passwords, "password", "password to hash (repeatable)")
	flag.Parse()

	if len(passwords) == 0 {
		fmt.Fprintln(os.Stderr, "usage: genhash -password <value> [-password <value>...]")
		os.Exit(2)
	}

	for _, pass := range passwords {
		if err := auth.ValidatePasswordLength(pass); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			continue
		}
		hash, err := auth.HashPassword(pass)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			continue
		}
		fmt.Println(hash)
	}
}
