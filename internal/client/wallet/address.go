// Package wallet derives the simulated wallet addresses used to key
// minted collections. Addresses only look like chain addresses; there is
// no key material behind them.
package wallet

import "strings"

const (
	// AddressPrefix is prepended to every derived address.
	AddressPrefix = "0xsim_"
	// AddressLength is the padded length of a derived address.
	AddressLength = 42
	// PadChar fills short addresses on the right.
	PadChar = '0'
)

// DeriveAddress maps a user name to a stable pseudo address: every
// character outside [a-zA-Z0-9] is dropped, the rest is lower-cased,
// prefixed with AddressPrefix and right-padded with PadChar to
// AddressLength. Longer results are kept as is.
//
// Empty names are valid input here; callers reject them.
func DeriveAddress(name string) string {
	var b strings.Builder
	b.Grow(AddressLength)
	b.WriteString(AddressPrefix)

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}

	for b.Len() < AddressLength {
		b.WriteByte(PadChar)
	}
	return b.String()
}

// ShortAddress renders an address as "0xsim_...0000" for status lines.
func ShortAddress(addr string) string {
	if len(addr) < 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}
