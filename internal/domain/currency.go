package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Currency is the canonical ISO-style code a published display name resolves to.
type Currency string

type catalogEntry struct {
	name string
	code Currency
}

// Codes source: https://iban.com/currency-codes.
// Order matters: prefix candidates resolve to the first entry whose name they
// are a prefix of.
var catalog = []catalogEntry{
	// standard names
	{"CFA_FRANC", "XOF"},
	{"DANISH_KRONE", "DKK"},
	{"EURO", "EUR"},
	{"NAIRA", "NGN"},
	{"POUND_STERLING", "GBP"},
	{"RAND", "ZAR"},
	{"SAUDI_RIYAL", "SAR"},
	{"SWISS_FRANC", "CHF"},
	{"US_DOLLAR", "USD"},
	{"YEN", "JPY"},
	{"YUAN_RENMINBI", "CNY"},

	// non-standard names seen in the published document
	{"JAPANESE_YEN", "JPY"},
	{"POUNDS_STERLING", "GBP"},
	{"RIYAL", "SAR"},
	{"SOUTH_AFRICAN_RAND", "ZAR"},

	// special units of account
	{"SDR", "SDR"},   // IMF Special Drawing Right
	{"WAUA", "WAUA"}, // West African Unit of Account
}

var nameReplacer = strings.NewReplacer(" ", "_", "/", "_")

// ResolveCurrency maps a published display name to its canonical code. Two
// candidates are tried in order, the full normalized name and its first
// underscore-delimited segment, each first as an exact match and then as a
// prefix of a catalog name.
func ResolveCurrency(rawName string) (Currency, error) {
	name := nameReplacer.Replace(strings.ToUpper(strings.TrimSpace(rawName)))

	for _, candidate := range []string{name, strings.SplitN(name, "_", 2)[0]} {
		if code, ok := lookupName(candidate); ok {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, rawName)
}

func lookupName(candidate string) (Currency, bool) {
	if candidate == "" {
		return "", false
	}
	for _, entry := range catalog {
		if entry.name == candidate {
			return entry.code, true
		}
	}
	for _, entry := range catalog {
		if strings.HasPrefix(entry.name, candidate) {
			return entry.code, true
		}
	}
	return "", false
}

// SupportedCodes returns the sorted set of canonical codes the catalog knows.
func SupportedCodes() []string {
	seen := make(map[Currency]struct{}, len(catalog))
	codes := make([]string, 0, len(catalog))
	for _, entry := range catalog {
		if _, ok := seen[entry.code]; ok {
			continue
		}
		seen[entry.code] = struct{}{}
		codes = append(codes, string(entry.code))
	}
	slices.Sort(codes)
	return codes
}
