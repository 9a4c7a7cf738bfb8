package product

import (
	"errors"
	"strings"
)

var (
	ErrEmptyCanonicalID = errors.New("canonical id cannot be empty")
	ErrInvalidKind      = errors.New("invalid product kind")
)

// Kind is carried through the SDK unchanged; the pricing backend does not
// look at it.
type Kind string

const (
	KindConsumable    Kind = "consumable"
	KindNonConsumable Kind = "non_consumable"
	KindSubscription  Kind = "subscription"
)

// NewKind accepts the snake_case values as well as CamelCase spellings such
// as "NonConsumable".
func NewKind(s string) (Kind, error) {
	want := foldKind(s)
	for _, k := range []Kind{KindConsumable, KindNonConsumable, KindSubscription} {
		if foldKind(string(k)) == want {
			return k, nil
		}
	}
	return "", ErrInvalidKind
}

func foldKind(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "")
}

func (k Kind) String() string {
	return string(k)
}

// Definition is the catalog-side description of a product before it becomes
// a Product.
type Definition struct {
	ID    string
	Kind  string
	Store string
}
