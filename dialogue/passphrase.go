// Package dialogue contains utilities for getting user input from the
// controlling terminal.
package dialogue

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// Passphrase reads a secret from the controlling terminal into buf and
// returns the number of bytes written. With echo unset the input is not
// displayed. With verify set the secret is read twice and both entries must
// match. The signature matches pki.PassphraseFunc so this can be passed
// straight into the private key decoder.
func Passphrase(prompt string, buf []byte, echo, verify bool) (int, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return 0, errors.New("stdin is not a terminal")
	}
	first, err := readSecret(prompt, echo)
	if err != nil {
		return 0, err
	}
	defer wipe(first)
	if verify {
		again, err := readSecret(prompt+" (again)", echo)
		if err != nil {
			return 0, err
		}
		defer wipe(again)
		if !bytes.Equal(first, again) {
			return 0, errors.New("passphrases do not match")
		}
	}
	if len(first) > len(buf) {
		return 0, errors.Errorf("passphrase longer than %d bytes", len(buf))
	}
	return copy(buf, first), nil
}

func readSecret(prompt string, echo bool) ([]byte, error) {
	fmt.Fprintf(os.Stderr, "%s ", prompt)
	if echo {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return nil, errors.Wrap(err, "reading from terminal")
		}
		return []byte(strings.TrimRight(line, "\r\n")), nil
	}
	secret, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, errors.Wrap(err, "reading from terminal")
	}
	return secret, nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
