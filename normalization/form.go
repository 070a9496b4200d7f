package normalization

import (
	"fmt"
	"strings"
)

// A Form denotes one of the four Unicode normalization forms of UAX #15.
type Form int

const (
	NFC Form = iota
	NFD
	NFKC
	NFKD
)

var formStrings = map[Form]string{
	NFC:  "NFC",
	NFD:  "NFD",
	NFKC: "NFKC",
	NFKD: "NFKD",
}

// Forms lists every supported form.
var Forms = []Form{NFC, NFD, NFKC, NFKD}

func (f Form) String() string {
	if s, ok := formStrings[f]; ok {
		return s
	}
	return fmt.Sprintf("Unknown Form (%d)", int(f))
}

func (f Form) valid() bool {
	_, ok := formStrings[f]
	return ok
}

// compat reports whether f applies compatibility decompositions.
func (f Form) compat() bool {
	return f == NFKC || f == NFKD
}

// composes reports whether f runs canonical composition.
func (f Form) composes() bool {
	return f == NFC || f == NFKC
}

// ParseForm parses a form name such as "nfc" or "NFKD".
func ParseForm(s string) (Form, error) {
	for f, name := range formStrings {
		if strings.EqualFold(s, name) {
			return f, nil
		}
	}
	return 0, normError(ErrUnknownForm, fmt.Sprintf("unknown normalization form %q", s))
}
