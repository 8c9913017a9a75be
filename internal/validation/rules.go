// Package validation compiles the configured address rule table into a
// runnable rule set. Every create and update passes through it; a single
// failing field fails the whole write.
package validation

import (
	"fmt"
	"sort"
	"strings"

	"addrbook/config"
	"addrbook/internal/domain/entity"
	domainerrors "addrbook/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// fieldOrder fixes the order in which fields are checked so aggregated
// messages are deterministic.
var fieldOrder = []string{
	"label",
	"given_name",
	"family_name",
	"organization",
	"street",
	"street_extra",
	"city",
	"province",
	"post_code",
	"country_code",
	"latitude",
	"longitude",
}

// Rules validates address attributes against the configured rule tokens.
type Rules struct {
	cfg      *config.AddressConfig
	rules    map[string][]string
	validate *validator.Validate
}

// New compiles the rule set for the given address configuration.
func New(cfg *config.AddressConfig) (*Rules, error) {
	v := validator.New()
	if err := v.RegisterValidation("country", func(fl validator.FieldLevel) bool {
		return entity.KnownCountry(fl.Field().String())
	}); err != nil {
		return nil, errors.Wrap(err, "register country rule")
	}

	return &Rules{
		cfg:      cfg,
		rules:    cfg.EffectiveRules(),
		validate: v,
	}, nil
}

// Validate runs every field rule against the address. On any failure it
// returns a FailedValidationError aggregating all messages; the caller must
// not persist anything.
func (r *Rules) Validate(address *entity.Address) error {
	var messages []string

	if !address.OwnerRef().Valid() {
		messages = append(messages, "The owner type and owner id fields must be set together.")
	}

	for _, field := range r.orderedFields() {
		messages = append(messages, r.checkField(address, field, r.rules[field])...)
	}

	messages = append(messages, r.checkFlags(address)...)

	if len(messages) > 0 {
		return domainerrors.NewFailedValidationError(messages...)
	}

	return nil
}

// orderedFields returns the configured field names in canonical order, with
// unknown extras appended alphabetically.
func (r *Rules) orderedFields() []string {
	fields := make([]string, 0, len(r.rules))
	seen := make(map[string]bool, len(r.rules))

	for _, field := range fieldOrder {
		if _, ok := r.rules[field]; ok {
			fields = append(fields, field)
			seen[field] = true
		}
	}

	var extras []string
	for field := range r.rules {
		if !seen[field] {
			extras = append(extras, field)
		}
	}
	sort.Strings(extras)

	return append(fields, extras...)
}

func (r *Rules) checkField(address *entity.Address, field string, tokens []string) []string {
	required := containsToken(tokens, "required")

	if value, ok := stringField(address, field); ok {
		if value == "" {
			if required {
				return []string{fmt.Sprintf("The %s field is required.", field)}
			}

			return nil
		}

		return r.checkStringTokens(field, value, tokens)
	}

	if value, ok := floatField(address, field); ok {
		if value == nil && required {
			return []string{fmt.Sprintf("The %s field is required.", field)}
		}

		return nil
	}

	// A rule for a field the record does not carry is a configuration
	// mistake; surface it instead of silently passing.
	return []string{fmt.Sprintf("The %s field is not a known address field.", field)}
}

func (r *Rules) checkStringTokens(field, value string, tokens []string) []string {
	var messages []string

	for _, token := range tokens {
		tag, message := translateToken(token)
		if tag == "" {
			continue
		}

		if err := r.validate.Var(value, tag); err != nil {
			messages = append(messages, fmt.Sprintf("The %s field %s.", field, message))
		}
	}

	return messages
}

// checkFlags rejects flags outside the configured set. The flag columns are
// part of the schema, so an unknown flag can never be persisted.
func (r *Rules) checkFlags(address *entity.Address) []string {
	if len(address.Flags) == 0 {
		return nil
	}

	names := make([]string, 0, len(address.Flags))
	for name := range address.Flags {
		names = append(names, name)
	}
	sort.Strings(names)

	var messages []string
	for _, name := range names {
		if !r.cfg.HasFlag(entity.NormalizeFlag(name)) {
			messages = append(messages, fmt.Sprintf("The %s flag is not configured.", name))
		}
	}

	return messages
}

// translateToken maps a rule token to a validator tag and the failure phrase.
// Structural tokens (required, nullable, string) are handled by the caller.
func translateToken(token string) (tag, message string) {
	name, arg, _ := strings.Cut(token, ":")

	switch name {
	case "required", "nullable", "string":
		return "", ""
	case "max":
		return "max=" + arg, fmt.Sprintf("must not be greater than %s characters", arg)
	case "size":
		return "len=" + arg, fmt.Sprintf("must be %s characters", arg)
	case "alpha":
		return "alpha", "must only contain letters"
	case "numeric":
		return "numeric", "must be a number"
	case "country":
		return "country", "must be a known country"
	default:
		return "", ""
	}
}

func containsToken(tokens []string, want string) bool {
	for _, token := range tokens {
		if token == want {
			return true
		}
	}

	return false
}

func stringField(address *entity.Address, field string) (string, bool) {
	switch field {
	case "label":
		return address.Label, true
	case "given_name":
		return address.GivenName, true
	case "family_name":
		return address.FamilyName, true
	case "organization":
		return address.Organization, true
	case "street":
		return address.Street, true
	case "street_extra":
		return address.StreetExtra, true
	case "city":
		return address.City, true
	case "province":
		return address.Province, true
	case "post_code":
		return address.PostCode, true
	case "country_code":
		return address.CountryCode, true
	default:
		return "", false
	}
}

func floatField(address *entity.Address, field string) (*float64, bool) {
	switch field {
	case "latitude":
		return address.Latitude, true
	case "longitude":
		return address.Longitude, true
	default:
		return nil, false
	}
}
