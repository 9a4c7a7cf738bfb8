// Package variant encodes and decodes the store-facing variant identifiers
// produced by the pricing backend.
//
// A variant looks like "z_" + canonical id + ".apprien_" + price in cents +
// "_" + 4 character hash, e.g. "z_pack2_gold.apprien_399_abcd". The "z_"
// prefix sorts variants after the base ids in store listings.
package variant

import (
	"strconv"
	"strings"
)

const (
	Prefix    = "z_"
	Separator = ".apprien_"
)

// Decorate builds the variant id for canonicalID priced at priceCents.
func Decorate(canonicalID string, priceCents int64, hash string) string {
	var b strings.Builder
	b.Grow(len(Prefix) + len(canonicalID) + len(Separator) + 20 + len(hash))
	b.WriteString(Prefix)
	b.WriteString(canonicalID)
	b.WriteString(Separator)
	b.WriteString(strconv.FormatInt(priceCents, 10))
	b.WriteByte('_')
	b.WriteString(hash)
	return b.String()
}

// Undecorate returns the canonical id for id. Ids without the separator are
// already canonical and come back unchanged.
func Undecorate(id string) string {
	pos := strings.Index(id, Separator)
	if pos < len(Prefix) {
		return id
	}
	return id[len(Prefix):pos]
}

func IsVariant(id string) bool {
	return strings.Index(id, Separator) >= len(Prefix)
}
