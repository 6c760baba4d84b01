package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"

	"homeservice.backend/pkg/crypto"
)

var (
	stdout         io.Writer = os.Stdout
	generateHashFn           = crypto.HashPassword
	fatalfFn                 = log.Fatalf
)

var errMismatch = errors.New("password does not match hash")

// runHashGen prints a bcrypt hash for the users/workers password column,
// or with --check verifies a password against a stored hash.
func runHashGen(args []string, out io.Writer) error {
	var check string
	fs := pflag.NewFlagSet("hash-gen", pflag.ContinueOnError)
	fs.StringVar(&check, "check", "", "stored hash to verify the password against")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: hash-gen [--check HASH] PASSWORD")
	}
	password := fs.Arg(0)

	if check != "" {
		if !crypto.CheckPassword(password, check) {
			return errMismatch
		}
		_, _ = fmt.Fprintln(out, "Password matches")
		return nil
	}

	hash, err := generateHashFn(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	_, _ = fmt.Fprintf(out, "Bcrypt Hash: %s\n", hash)
	return nil
}

func main() {
	if err := runHashGen(os.Args[1:], stdout); err != nil {
		fatalfFn("%v", err)
	}
}
