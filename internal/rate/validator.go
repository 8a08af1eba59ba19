package rate

import (
	"errors"
	"fmt"
	"slices"
)

var ErrSymbolUnsupported = errors.New("currency symbol not supported")

// SymbolValidator checks requested currency symbols against the catalog's
// supported codes before any storage lookup happens.
type SymbolValidator struct {
	supportedCodesSet map[string]struct{} // read only copy
	supportedCodesLst []string            // read only copy
}

func (v *SymbolValidator) ValidateSymbols(symbols []string) error {
	for _, symbol := range symbols {
		if _, ok := v.supportedCodesSet[symbol]; !ok {
			return fmt.Errorf("%w: %q", ErrSymbolUnsupported, symbol)
		}
	}
	return nil
}

func (v *SymbolValidator) SupportedCodes() []string {
	return slices.Clone(v.supportedCodesLst)
}

func NewValidator(supportedCodes []string) *SymbolValidator {
	codesSet := make(map[string]struct{}, len(supportedCodes))
	for _, code := range supportedCodes {
		codesSet[code] = struct{}{}
	}
	codesLst := slices.Clone(supportedCodes)
	slices.Sort(codesLst)

	return &SymbolValidator{
		supportedCodesSet: codesSet,
		supportedCodesLst: codesLst,
	}
}
