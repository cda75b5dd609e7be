package directive

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

var (
	validate      = validator.New()
	schemaDecoder = newDecoder()
)

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(false)
	return d
}

// Options are the generation options of an enum directive.
//
// Booleans may be written as a bare key ("strict") or as key=value
// ("consts=false"). Unset options fall back to the generator config.
type Options struct {
	// Strict rejects variant lists that declare a name twice.
	Strict *bool `schema:"strict"`

	// Text adds MarshalText and UnmarshalText methods.
	Text *bool `schema:"text"`

	// Consts controls whether typed constants are emitted for the variants.
	Consts *bool `schema:"consts"`

	// String controls whether a String method is emitted.
	String *bool `schema:"string"`

	// Output overrides the generated file name for this enum.
	Output string `schema:"output" validate:"omitempty,endswith=.go,excludesall=/\\"`
}

// ParseOptions decodes the arguments of an enum directive.
func ParseOptions(args []string) (Options, error) {
	values := make(url.Values, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			value = "true"
		}
		if key == "" {
			return Options{}, fmt.Errorf("malformed option %q", arg)
		}
		if values.Has(key) {
			return Options{}, fmt.Errorf("option %s given twice", key)
		}
		values.Set(key, value)
	}

	var opts Options
	if err := schemaDecoder.Decode(&opts, values); err != nil {
		return Options{}, fmt.Errorf("decode options: %w", err)
	}
	if err := validate.Struct(opts); err != nil {
		return Options{}, fmt.Errorf("invalid options: %w", err)
	}
	return opts, nil
}

// Bool returns *p, or def if the option was not given.
func Bool(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
