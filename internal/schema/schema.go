// Package schema validates raw talent-authoring input and normalizes it into
// the typed values of the talents entity package.
//
// Input is an unordered bag of fields as decoded from JSON or a
// google.protobuf.Struct: map[string]any with string, float64, bool, []any and
// nested map values. Every parser returns either a fully defaulted value or an
// InvalidArgument error whose issues can be read with errors.GetIssues. A
// record is accepted or rejected as a whole.
//
// A *Schema holds only immutable options and is safe for concurrent use.
package schema

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
)

// DefaultTiers is the rarity tier enumeration used when none is configured
var DefaultTiers = []string{"common", "uncommon", "rare", "epic", "legendary"}

// Options configures the enumerations and strictness of a Schema
type Options struct {
	// Tiers is the accepted rarity tier enumeration
	Tiers []string
	// Resources is the accepted resource cost enumeration
	Resources []talents.ResourceType
	// ReportMode selects the report validation rules
	ReportMode talents.ReportMode
	// Strict rejects fields that do not belong to the selected shape instead
	// of stripping them
	Strict bool
}

// DefaultOptions returns the options used by Default
func DefaultOptions() Options {
	return Options{
		Tiers:      append([]string{}, DefaultTiers...),
		Resources:  append([]talents.ResourceType{}, talents.DefaultResources...),
		ReportMode: talents.ReportModeCard,
	}
}

// Validate checks the options
func (o *Options) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(o.Tiers) == 0 {
		vb.RequiredField("Tiers")
	}
	for _, tier := range o.Tiers {
		if strings.TrimSpace(tier) == "" {
			vb.Field("Tiers", "must not contain empty tiers")
			break
		}
	}
	if len(o.Resources) == 0 {
		vb.RequiredField("Resources")
	}
	modes := make([]string, len(talents.ReportModes))
	for i, m := range talents.ReportModes {
		modes[i] = string(m)
	}
	errors.ValidateEnum("ReportMode", string(o.ReportMode), modes, vb)

	return vb.Build()
}

// Schema parses and validates raw input
type Schema struct {
	opts      Options
	tiers     []string
	resources []talents.ResourceType
	validate  *validator.Validate
}

// New creates a Schema from options
func New(opts Options) (*Schema, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid schema options")
	}

	tiers := make([]string, len(opts.Tiers))
	for i, t := range opts.Tiers {
		tiers[i] = strings.ToLower(strings.TrimSpace(t))
	}

	return &Schema{
		opts:      opts,
		tiers:     tiers,
		resources: append([]talents.ResourceType{}, opts.Resources...),
		validate:  validator.New(),
	}, nil
}

// Default returns a Schema built from DefaultOptions
func Default() *Schema {
	s, err := New(DefaultOptions())
	if err != nil {
		panic(err)
	}
	return s
}

// Options returns a copy of the schema's options
func (s *Schema) Options() Options {
	out := s.opts
	out.Tiers = append([]string{}, s.opts.Tiers...)
	out.Resources = append([]talents.ResourceType{}, s.opts.Resources...)
	return out
}

// Tiers returns the normalized tier enumeration
func (s *Schema) Tiers() []string {
	return append([]string{}, s.tiers...)
}

// result converts collected issues into the package's error contract
func result(ve *errors.ValidationError) error {
	if !ve.HasErrors() {
		return nil
	}
	return ve.ToError()
}
