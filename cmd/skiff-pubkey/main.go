// skiff-pubkey derives the public key blob from a private key file and
// prints it as an authorized_keys style line.
package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"skiff.network/skiff/dialogue"
	"skiff.network/skiff/pki"
)

func main() {
	keyPath := flag.String("f", "", "path to the private key file")
	passphrase := flag.String("P", "", "passphrase for the key (prompts if empty and the key is encrypted)")
	flag.Parse()
	if *keyPath == "" {
		logrus.Fatal("no key file given, use -f")
	}

	line, err := publicLine(*keyPath, *passphrase)
	if err != nil {
		logrus.Fatalf("unable to derive public key: %v", err)
	}
	fmt.Println(line)
}

func publicLine(path, passphrase string) (string, error) {
	encoded, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "reading key file")
	}

	var direct []byte
	if passphrase != "" {
		direct = []byte(passphrase)
	}
	var prompt pki.PassphraseFunc
	if direct == nil && isatty.IsTerminal(os.Stdin.Fd()) {
		prompt = dialogue.Passphrase
	}

	key, err := pki.DecodePrivateKey(encoded, direct, prompt)
	if err != nil {
		return "", err
	}
	defer key.Destroy()

	pub, err := pki.Duplicate(key, true)
	if err != nil {
		return "", err
	}
	blob, err := pki.EncodePublicKey(pub)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s", pub.TypeName(), base64.StdEncoding.EncodeToString(blob)), nil
}
