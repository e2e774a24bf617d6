package account

import (
	"context"

	"github.com/pkg/errors"

	"github.com/code-payments/strike-go/pkg/currency"
	"github.com/code-payments/strike-go/pkg/strike"
)

const (
	profileByHandleURLFormat = "accounts/handle/%s/profile"
	profileByIDURLFormat     = "accounts/%s/profile"
)

var ErrMissingIdentifier = errors.New("account handle or id is required")

// Profile is the public profile of a Strike account.
type Profile struct {
	ID          string            `json:"id"`
	Handle      string            `json:"handle"`
	AvatarURL   string            `json:"avatarUrl,omitempty"`
	Description string            `json:"description,omitempty"`
	CanReceive  bool              `json:"canReceive"`
	Currencies  []CurrencySupport `json:"currencies"`
}

type CurrencySupport struct {
	Currency          currency.Code `json:"currency"`
	IsDefaultCurrency bool          `json:"isDefaultCurrency"`
	IsAvailable       bool          `json:"isAvailable"`
	IsInvoiceable     bool          `json:"isInvoiceable"`
}

// DefaultCurrency returns the currency the account receives in by default.
func (p *Profile) DefaultCurrency() (currency.Code, bool) {
	for _, supported := range p.Currencies {
		if supported.IsDefaultCurrency {
			return supported.Currency, true
		}
	}
	return "", false
}

// CanBeInvoicedIn reports whether invoices may be issued to the account in
// code.
func (p *Profile) CanBeInvoicedIn(code currency.Code) bool {
	for _, supported := range p.Currencies {
		if supported.Currency == code {
			return supported.IsAvailable && supported.IsInvoiceable
		}
	}
	return false
}

// ProfileRequest looks up an account profile by handle or by id.
type ProfileRequest struct {
	strike.Endpoint

	handle string
	id     string
}

func NewProfileByHandleRequest(endpoint strike.Endpoint, handle string) *ProfileRequest {
	return &ProfileRequest{
		Endpoint: endpoint,
		handle:   handle,
	}
}

func NewProfileByIDRequest(endpoint strike.Endpoint, id string) *ProfileRequest {
	return &ProfileRequest{
		Endpoint: endpoint,
		id:       id,
	}
}

func (r *ProfileRequest) URL() string {
	if len(r.id) > 0 {
		return r.Environment.URL(profileByIDURLFormat, strike.PathSegment(r.id))
	}
	return r.Environment.URL(profileByHandleURLFormat, strike.PathSegment(r.handle))
}

func (r *ProfileRequest) isValid() bool {
	return len(r.handle) > 0 || len(r.id) > 0
}

// GetByHandle fetches the profile of the account with the given handle.
func GetByHandle(ctx context.Context, c *strike.Client, endpoint strike.Endpoint, handle string) (*Profile, error) {
	return GetProfile(ctx, c, NewProfileByHandleRequest(endpoint, handle))
}

// GetByID fetches the profile of the account with the given id.
func GetByID(ctx context.Context, c *strike.Client, endpoint strike.Endpoint, id string) (*Profile, error) {
	return GetProfile(ctx, c, NewProfileByIDRequest(endpoint, id))
}

func GetProfile(ctx context.Context, c *strike.Client, r *ProfileRequest) (*Profile, error) {
	if !r.isValid() {
		return nil, ErrMissingIdentifier
	}

	profile, err := strike.Get[Profile](ctx, c, r)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
