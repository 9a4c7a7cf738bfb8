package pricing

import (
	"net/url"
	"strconv"
	"strings"
)

const apiPrefix = "/api/v1"

// endpoints builds the backend URLs. Path segments are escaped.
type endpoints struct {
	base  string
	store string
	pkg   string
}

func newEndpoints(baseURL, store, pkg string) endpoints {
	return endpoints{
		base:  strings.TrimRight(baseURL, "/"),
		store: url.PathEscape(store),
		pkg:   url.PathEscape(pkg),
	}
}

func (e endpoints) game() string {
	return e.base + apiPrefix + "/stores/" + e.store + "/games/" + e.pkg
}

func (e endpoints) allPrices() string {
	return e.game() + "/prices"
}

func (e endpoints) price(canonicalID string) string {
	return e.game() + "/products/" + url.PathEscape(canonicalID) + "/prices"
}

func (e endpoints) receipts() string {
	return e.game() + "/receipts"
}

func (e endpoints) auth() string {
	return e.game() + "/auth"
}

func (e endpoints) productsShown() string {
	return e.base + apiPrefix + "/stores/" + e.store + "/shown/products"
}

func (e endpoints) status() string {
	return e.base + "/status"
}

func (e endpoints) errorReport(message string, responseCode int, pkg, store string) string {
	q := url.Values{}
	q.Set("message", message)
	q.Set("responseCode", strconv.Itoa(responseCode))
	q.Set("storeGame", pkg)
	q.Set("store", store)
	return e.base + "/error?" + q.Encode()
}
