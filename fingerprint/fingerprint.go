// Package fingerprint turns SSH key material into the seed hex string the
// visual generators consume. The chain is: public key file or fingerprint
// string -> SHA256 fingerprint -> avalanche remap -> 64 character lowercase
// hex seed.
package fingerprint

import (
	"fmt"
	"log"
	"os"
	"regexp"

	"github.com/randomfusion/sdk/seed"
	"github.com/randomfusion/sdk/utils"
	"golang.org/x/crypto/ssh"
)

// matches the fingerprint formats ssh tooling prints: SHA256 base64 and the
// legacy MD5 colon form
var fingerprintRegex = regexp.MustCompile(`^(SHA256:[a-zA-Z0-9+/=]{43}|MD5:([0-9a-f]{2}:){15}[0-9a-f]{2})$`)

func Valid(fp string) bool {
	return fingerprintRegex.MatchString(fp)
}

func Normalize(fp string) (string, error) {
	if !Valid(fp) {
		return "", fmt.Errorf("%s: %q", utils.ErrorNotFingerprint, fp)
	}
	return fp, nil
}

// FromPublicKeyFile reads an authorized_keys style public key and returns
// its SHA256 fingerprint, as ssh-keygen -l would print it.
func FromPublicKeyFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading key file: %w", err)
	}
	pub, _, _, _, err := ssh.ParseAuthorizedKey(data)
	if err != nil {
		return "", fmt.Errorf("parsing public key %s: %w", path, err)
	}
	return ssh.FingerprintSHA256(pub), nil
}

// KeyData decides whether the input is a key file on disk or a fingerprint
// string and returns the fingerprint either way.
func KeyData(input string, logger *log.Logger) (string, error) {
	if info, err := os.Stat(input); err == nil && info.Mode().IsRegular() {
		logger.Println("input detected as a key file, extracting fingerprint from ", input)
		return FromPublicKeyFile(input)
	}
	return Normalize(input)
}

// Remap applies the avalanche step: hashing the fingerprint so that any
// change in it reshuffles the entire seed.
func Remap(fp string) string {
	return seed.Digest(fp)
}
