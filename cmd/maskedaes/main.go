// Command maskedaes encrypts and decrypts stdin using the masked AES-128
// core, in ECB or CBC mode, with the key supplied as hex or derived from
// a passphrase.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/vaultwire/maskedaes"
)

func main() {
	var (
		mode       = flag.String("mode", "cbc", "cipher mode: ecb or cbc")
		decrypt    = flag.Bool("d", false, "decrypt instead of encrypt")
		keyHex     = flag.String("key", "", "16-byte key, hex-encoded")
		passphrase = flag.String("passphrase", "", "derive the key from a passphrase instead of -key")
		saltHex    = flag.String("salt", "", "hex-encoded salt for -passphrase (required with -passphrase)")
		ivHex      = flag.String("iv", "", "16-byte IV, hex-encoded (required in CBC mode, for both directions)")
	)
	flag.Parse()

	key, err := resolveKey(*keyHex, *passphrase, *saltHex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "maskedaes: %v\n", err)
		os.Exit(1)
	}

	session, err := maskedaes.NewSession(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "maskedaes: %v\n", err)
		os.Exit(1)
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "maskedaes: reading stdin: %v\n", err)
		os.Exit(1)
	}

	var output []byte
	switch *mode {
	case "ecb":
		output, err = runECB(session, input, *decrypt)
	case "cbc":
		output, err = runCBC(session, input, *ivHex, *decrypt)
	default:
		err = fmt.Errorf("unknown -mode %q, want ecb or cbc", *mode)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "maskedaes: %v\n", err)
		os.Exit(1)
	}

	if _, err := os.Stdout.Write(output); err != nil {
		fmt.Fprintf(os.Stderr, "maskedaes: writing stdout: %v\n", err)
		os.Exit(1)
	}
}

func resolveKey(keyHex, passphrase, saltHex string) ([]byte, error) {
	if passphrase != "" {
		if saltHex == "" {
			return nil, fmt.Errorf("-salt is required with -passphrase")
		}
		salt, err := hex.DecodeString(saltHex)
		if err != nil {
			return nil, fmt.Errorf("decoding -salt: %w", err)
		}
		return maskedaes.PassphraseKeyArgon2id([]byte(passphrase), salt, maskedaes.DefaultArgon2idParams())
	}
	if keyHex == "" {
		return nil, fmt.Errorf("either -key or -passphrase is required")
	}
	return hex.DecodeString(keyHex)
}

func runECB(session *maskedaes.Session, input []byte, decrypt bool) ([]byte, error) {
	if len(input)%maskedaes.BlockSize != 0 {
		return nil, fmt.Errorf("ecb input length %d is not a multiple of %d bytes", len(input), maskedaes.BlockSize)
	}
	output := make([]byte, len(input))
	if decrypt {
		return output, session.DecryptECBBuffer(output, input)
	}
	return output, session.EncryptECBBuffer(output, input)
}

func runCBC(session *maskedaes.Session, input []byte, ivHex string, decrypt bool) ([]byte, error) {
	if ivHex == "" {
		return nil, fmt.Errorf("-iv is required in CBC mode")
	}
	ivBytes, err := hex.DecodeString(ivHex)
	if err != nil {
		return nil, fmt.Errorf("decoding -iv: %w", err)
	}
	if err := maskedaes.ValidateIV(ivBytes); err != nil {
		return nil, err
	}
	var iv [maskedaes.BlockSize]byte
	copy(iv[:], ivBytes)

	full := (len(input) / maskedaes.BlockSize) * maskedaes.BlockSize
	padded := full
	if full < len(input) {
		padded += maskedaes.BlockSize
	}
	output := make([]byte, padded)
	if decrypt {
		return output, session.DecryptCBC(output, input, iv)
	}
	return output, session.EncryptCBC(output, input, iv)
}
