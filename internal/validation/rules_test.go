package validation

import (
	"strings"
	"testing"

	"addrbook/config"
	"addrbook/internal/domain/entity"
	domainerrors "addrbook/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRules(t *testing.T, mutate func(cfg *config.AddressConfig)) *Rules {
	t.Helper()

	cfg := config.DefaultAddressConfig()
	if mutate != nil {
		mutate(cfg)
	}

	rules, err := New(cfg)
	require.NoError(t, err)

	return rules
}

func validAddress() *entity.Address {
	return &entity.Address{
		OwnerType:   "user",
		OwnerID:     7,
		Street:      "123 Main St",
		City:        "Portland",
		Province:    "Oregon",
		PostCode:    "97201",
		CountryCode: "US",
	}
}

func failureMessages(t *testing.T, err error) []string {
	t.Helper()

	var failed *domainerrors.FailedValidationError
	require.ErrorAs(t, err, &failed)

	return failed.Messages
}

func TestRules_Validate_Passes(t *testing.T) {
	rules := newRules(t, nil)

	assert.NoError(t, rules.Validate(validAddress()))
}

func TestRules_Validate_PassesUnowned(t *testing.T) {
	rules := newRules(t, nil)

	address := validAddress()
	address.OwnerType = ""
	address.OwnerID = 0

	assert.NoError(t, rules.Validate(address))
}

func TestRules_Validate_RequiredFields(t *testing.T) {
	rules := newRules(t, nil)

	err := rules.Validate(&entity.Address{OwnerType: "user", OwnerID: 7})
	messages := failureMessages(t, err)

	assert.Contains(t, messages, "The street field is required.")
	assert.Contains(t, messages, "The city field is required.")
	assert.Contains(t, messages, "The province field is required.")
	assert.Contains(t, messages, "The country_code field is required.")
	// post_code is nullable by default.
	assert.NotContains(t, messages, "The post_code field is required.")
}

func TestRules_Validate_ErrorStringFormat(t *testing.T) {
	rules := newRules(t, nil)

	address := validAddress()
	address.Street = ""
	address.City = ""

	err := rules.Validate(address)
	require.Error(t, err)
	assert.Equal(t, "[Addresses] The street field is required. The city field is required.", err.Error())
}

func TestRules_Validate_HalfSetOwner(t *testing.T) {
	rules := newRules(t, nil)

	address := validAddress()
	address.OwnerID = 0

	messages := failureMessages(t, rules.Validate(address))
	assert.Contains(t, messages, "The owner type and owner id fields must be set together.")
}

func TestRules_Validate_CountryCode(t *testing.T) {
	rules := newRules(t, nil)

	address := validAddress()
	address.CountryCode = "XX"
	messages := failureMessages(t, rules.Validate(address))
	assert.Contains(t, messages, "The country_code field must be a known country.")

	address.CountryCode = "USA"
	messages = failureMessages(t, rules.Validate(address))
	assert.Contains(t, messages, "The country_code field must be 2 characters.")

	address.CountryCode = "U1"
	messages = failureMessages(t, rules.Validate(address))
	assert.Contains(t, messages, "The country_code field must only contain letters.")
}

func TestRules_Validate_MaxLength(t *testing.T) {
	rules := newRules(t, nil)

	address := validAddress()
	address.Label = strings.Repeat("x", 151)

	messages := failureMessages(t, rules.Validate(address))
	assert.Contains(t, messages, "The label field must not be greater than 150 characters.")
}

func TestRules_Validate_RequirePostCodeToggle(t *testing.T) {
	rules := newRules(t, func(cfg *config.AddressConfig) {
		cfg.RequirePostCode = true
	})

	address := validAddress()
	address.PostCode = ""

	messages := failureMessages(t, rules.Validate(address))
	assert.Contains(t, messages, "The post_code field is required.")
}

func TestRules_Validate_UnconfiguredFlag(t *testing.T) {
	rules := newRules(t, nil)

	address := validAddress()
	address.SetFlag("preferred", true)

	messages := failureMessages(t, rules.Validate(address))
	assert.Contains(t, messages, "The preferred flag is not configured.")
}

func TestRules_Validate_ConfiguredFlagsPass(t *testing.T) {
	rules := newRules(t, nil)

	address := validAddress()
	address.SetFlag("primary", true)
	address.SetFlag("is_billing", false)

	assert.NoError(t, rules.Validate(address))
}

func TestRules_Validate_CustomFlagSet(t *testing.T) {
	rules := newRules(t, func(cfg *config.AddressConfig) {
		cfg.Flags = []string{"primary", "preferred"}
	})

	address := validAddress()
	address.SetFlag("preferred", true)

	assert.NoError(t, rules.Validate(address))
}

func TestRules_Validate_UnknownRuleField(t *testing.T) {
	rules := newRules(t, func(cfg *config.AddressConfig) {
		cfg.Rules["nickname"] = []string{"required", "string"}
	})

	messages := failureMessages(t, rules.Validate(validAddress()))
	assert.Contains(t, messages, "The nickname field is not a known address field.")
}

func TestRules_Validate_DeterministicOrder(t *testing.T) {
	rules := newRules(t, nil)

	address := &entity.Address{OwnerType: "user", OwnerID: 7}

	first := rules.Validate(address).Error()
	for range 5 {
		assert.Equal(t, first, rules.Validate(address).Error())
	}
}
