package entities

// GenderAny is the wildcard gender in a fee rule; CategoryAny the wildcard
// category. Both mirror what catalog admins author.
const (
	CategoryAny = "Any"
	GenderAny   = "Any"
)

// FeeRule maps one category×gender pair to an official government fee.
// Rule order inside a target is irrelevant; matching uses explicit
// precedence in the fee resolver.
type FeeRule struct {
	Category string `json:"category"`
	Gender   string `json:"gender"`
	Amount   int64  `json:"amount"`
}

// FormField is one declared field of a target's dynamic application form.
type FormField struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// CatalogTarget is the already-loaded job/service definition handed to the
// engine by the catalog collaborator. The engine never writes it.
//
// CategoryField/GenderField designate the canonical answer keys for fee
// resolution; when empty the resolver falls back to loose label matching
// for legacy targets.
type CatalogTarget struct {
	ServiceType   string      `json:"service_type"`
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Category      string      `json:"category"`
	ServiceFee    int64       `json:"service_fee"`
	FeeRules      []FeeRule   `json:"fee_rules"`
	FormFields    []FormField `json:"form_fields"`
	CategoryField string      `json:"category_field,omitempty"`
	GenderField   string      `json:"gender_field,omitempty"`
	IsActive      bool        `json:"is_active"`
}
