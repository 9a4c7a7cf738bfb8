package catalog

import (
	"context"
	"io/fs"
	"log/slog"
	"os"

	"apprien-go-sdk/internal/domain/product"
	"apprien-go-sdk/internal/infra"
	"apprien-go-sdk/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

var ErrInvalidCatalog = errs.New("invalid catalog")

// Entry is one product line of the catalog file. PriceCents is only read by
// the stub server.
type Entry struct {
	ID         string `yaml:"id" validate:"required"`
	Type       string `yaml:"type" copier:"Kind" validate:"required,oneof=consumable non_consumable subscription"`
	Store      string `yaml:"store" validate:"omitempty,oneof=google apple"`
	PriceCents int64  `yaml:"price_cents" validate:"gte=0"`
}

type file struct {
	Products []Entry `yaml:"products" validate:"dive"`
}

var validate = validator.New()

// Parse decodes and validates a catalog document.
func Parse(data []byte) ([]Entry, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode catalog"), ErrInvalidCatalog)
	}
	if err := validate.Struct(f); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "validate catalog"), ErrInvalidCatalog)
	}
	return f.Products, nil
}

// ReadFile loads the catalog at path.
func ReadFile(logger *slog.Logger, path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		kind := infra.KindIO
		if errs.Is(err, fs.ErrNotExist) {
			kind = infra.KindNotFound
		}
		return nil, infra.WrapErr(logger, kind, "read catalog "+path, err)
	}
	entries, err := Parse(data)
	if err != nil {
		return nil, infra.WrapErr(logger, infra.KindInvalid, "parse catalog "+path, err)
	}
	return entries, nil
}

// Definitions converts entries to product definitions.
func Definitions(entries []Entry) ([]product.Definition, error) {
	var defs []product.Definition
	if err := copier.Copy(&defs, &entries); err != nil {
		return nil, errs.Wrap(err, "copy catalog entries")
	}
	return defs, nil
}

// YAMLAdapter loads products from a YAML catalog file on every call.
type YAMLAdapter struct {
	path   string
	logger *slog.Logger
}

func NewYAMLAdapter(path string, logger *slog.Logger) *YAMLAdapter {
	return &YAMLAdapter{path: path, logger: logger}
}

func (a *YAMLAdapter) Load(ctx context.Context) ([]*product.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := ReadFile(a.logger, a.path)
	if err != nil {
		return nil, err
	}
	defs, err := Definitions(entries)
	if err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(defs))
	for _, def := range defs {
		p, err := product.FromDefinition(def)
		if err != nil {
			return nil, infra.WrapErr(a.logger, infra.KindInvalid, "catalog product "+def.ID, errs.Mark(err, ErrInvalidCatalog))
		}
		products = append(products, p)
	}
	a.logger.Debug("catalog loaded", slog.String("file", a.path), slog.Int("products", len(products)))
	return products, nil
}
