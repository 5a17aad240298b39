package customer

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName   = errors.New("name is required")
	ErrEmptyPhone  = errors.New("phone is required")
	ErrInvalidTier = errors.New("invalid loyalty tier")
)

type LoyaltyTier string

const (
	TierVIP      LoyaltyTier = "VIP"
	TierPlatinum LoyaltyTier = "Platinum"
	TierGold     LoyaltyTier = "Gold"
	TierSilver   LoyaltyTier = "Silver"
)

func NewLoyaltyTier(s string) (LoyaltyTier, error) {
	switch t := LoyaltyTier(s); t {
	case TierVIP, TierPlatinum, TierGold, TierSilver:
		return t, nil
	default:
		return "", ErrInvalidTier
	}
}

type Customer struct {
	id          uuid.UUID
	name        string
	phone       string
	loyaltyTier LoyaltyTier
}

func NewCustomer(name, phone string, tier LoyaltyTier) (*Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return nil, ErrEmptyName
	}
	if phone == "" {
		return nil, ErrEmptyPhone
	}
	if _, err := NewLoyaltyTier(string(tier)); err != nil {
		return nil, err
	}
	return &Customer{
		id:          uuid.New(),
		name:        name,
		phone:       phone,
		loyaltyTier: tier,
	}, nil
}

func (c *Customer) ID() uuid.UUID            { return c.id }
func (c *Customer) Name() string             { return c.name }
func (c *Customer) Phone() string            { return c.phone }
func (c *Customer) LoyaltyTier() LoyaltyTier { return c.loyaltyTier }
