package billers

import (
	"fmt"
	"strings"
)

// Kind groups providers by the kind of bill they collect.
type Kind string

const (
	KindElectricity Kind = "electricity"
	KindWater       Kind = "water"
	KindAirtime     Kind = "airtime"
	KindCableTV     Kind = "cabletv"
	KindInternet    Kind = "internet"
)

// Provider is one bill provider in the catalog. DetailLabel names the
// provider-specific field a payment needs (meter number, phone number,
// smartcard number).
type Provider struct {
	Code        string
	Name        string
	Kind        Kind
	DetailLabel string

	validate func(string) error
}

// ValidateDetail checks the provider-specific payment detail.
func (p Provider) ValidateDetail(value string) error {
	v := strings.TrimSpace(value)
	if v == "" {
		return fmt.Errorf("%s is required", p.DetailLabel)
	}
	if p.validate == nil {
		return nil
	}
	if err := p.validate(v); err != nil {
		return fmt.Errorf("invalid %s: %w", p.DetailLabel, err)
	}
	return nil
}

// PaymentDescription builds the ledger description for a payment to this
// provider. The first word carries the recipient.
func (p Provider) PaymentDescription(detail string) string {
	return fmt.Sprintf("%s %s payment (%s %s)", p.Name, p.Kind, p.DetailLabel, strings.TrimSpace(detail))
}

// Registry holds providers by code.
type Registry struct {
	providers map[string]Provider
	order     []string
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register adds a provider. Panics on duplicate code.
func (r *Registry) Register(p Provider) {
	key := strings.ToLower(p.Code)
	if _, ok := r.providers[key]; ok {
		panic("duplicate provider code: " + key)
	}
	r.providers[key] = p
	r.order = append(r.order, key)
}

// Get returns the provider for code.
func (r *Registry) Get(code string) (Provider, bool) {
	p, ok := r.providers[strings.ToLower(code)]
	return p, ok
}

// All returns all providers in registration order.
func (r *Registry) All() []Provider {
	out := make([]Provider, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.providers[key])
	}
	return out
}

// ByKind returns all providers of the given kind, in registration order.
func (r *Registry) ByKind(kind Kind) []Provider {
	var out []Provider
	for _, key := range r.order {
		if r.providers[key].Kind == kind {
			out = append(out, r.providers[key])
		}
	}
	return out
}

func digitsOfLength(n int, what string) func(string) error {
	return func(v string) error {
		if len(v) != n {
			return fmt.Errorf("%s must be %d digits", what, n)
		}
		for _, ch := range v {
			if ch < '0' || ch > '9' {
				return fmt.Errorf("%s must contain only digits", what)
			}
		}
		return nil
	}
}

func phoneNumber(v string) error {
	digits := strings.TrimPrefix(v, "+234")
	if digits == v {
		// Local format: leading zero plus ten digits.
		if len(v) != 11 || v[0] != '0' {
			return fmt.Errorf("phone number must be 11 digits starting with 0, or +234 format")
		}
		digits = v[1:]
	}
	if len(digits) != 10 {
		return fmt.Errorf("phone number must have 10 digits after the prefix")
	}
	for _, ch := range digits {
		if ch < '0' || ch > '9' {
			return fmt.Errorf("phone number must contain only digits")
		}
	}
	return nil
}
