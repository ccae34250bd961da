package gen

import (
	"math/big"
	"net/url"
	"reflect"
	"time"
)

// knownEpoch is the fixed instant produced for time.Time.
var knownEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

var known = map[reflect.Type]func() (present, empty any){
	reflect.TypeOf(time.Time{}): func() (any, any) {
		return knownEpoch, time.Time{}
	},
	reflect.TypeOf((*time.Location)(nil)): func() (any, any) {
		return time.UTC, (*time.Location)(nil)
	},
	reflect.TypeOf((*big.Int)(nil)): func() (any, any) {
		return big.NewInt(1), (*big.Int)(nil)
	},
	reflect.TypeOf(url.URL{}): func() (any, any) {
		return url.URL{Scheme: "https", Host: "example.com"}, url.URL{}
	},
	reflect.TypeOf((*url.URL)(nil)): func() (any, any) {
		return &url.URL{Scheme: "https", Host: "example.com"}, (*url.URL)(nil)
	},
}

// Known produces values for well-known library types whose unexported state
// makes field-wise construction meaningless (time.Time, *time.Location,
// *big.Int, url.URL, *url.URL).
type Known struct{}

// Supports implements Generator.
func (Known) Supports(t reflect.Type) bool {
	_, ok := known[t]
	return ok
}

// Generate implements Generator.
func (Known) Generate(t reflect.Type) (Value, error) {
	f, ok := known[t]
	if !ok {
		return unsupported(t)
	}
	present, empty := f()
	return Eager(present, empty), nil
}
