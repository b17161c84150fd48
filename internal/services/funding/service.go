// Package funding tokenizes the card a student tops up from. The charge
// itself is handled by the campus payment gateway; this service only
// validates the card and exchanges it for a Stripe token so raw numbers
// never reach the wallet layer.
package funding

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/token"
)

type CardDetails struct {
	Number      string `json:"number" validate:"required"`
	ExpiryMonth string `json:"expiry_month" validate:"required"`
	ExpiryYear  string `json:"expiry_year" validate:"required"`
}

type CardToken struct {
	Token  string `json:"token"`
	Brand  string `json:"brand"`
	Expiry string `json:"expiry"`
}

var ErrInvalidCard = errors.New("invalid card number: failed validation check")

// Tokenize exchanges card details for an opaque token. Stripe test
// tokens (tok_*) pass straight through so local environments work
// without a Stripe account.
func Tokenize(card CardDetails) (*CardToken, error) {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	if strings.HasPrefix(card.Number, "tok_") {
		brand := "Unknown"
		switch card.Number {
		case "tok_visa":
			brand = "Visa"
		case "tok_mastercard":
			brand = "Mastercard"
		case "tok_amex":
			brand = "American Express"
		}
		return &CardToken{
			Token:  card.Number,
			Brand:  brand,
			Expiry: fmt.Sprintf("%s/%s", card.ExpiryMonth, card.ExpiryYear),
		}, nil
	}

	if !validCardNumber(card.Number) {
		return nil, ErrInvalidCard
	}

	params := &stripe.TokenParams{
		Card: &stripe.CardParams{
			Number:   &card.Number,
			ExpMonth: &card.ExpiryMonth,
			ExpYear:  &card.ExpiryYear,
		},
	}
	stripeToken, err := token.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe tokenization failed: %w", err)
	}

	return &CardToken{
		Token:  stripeToken.ID,
		Brand:  string(stripeToken.Card.Brand),
		Expiry: fmt.Sprintf("%s/%s", card.ExpiryMonth, card.ExpiryYear),
	}, nil
}

// Luhn check.
func validCardNumber(number string) bool {
	if number == "" {
		return false
	}

	var sum int
	shouldDouble := false
	for i := len(number) - 1; i >= 0; i-- {
		if number[i] < '0' || number[i] > '9' {
			return false
		}
		digit := int(number[i] - '0')
		if shouldDouble {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		shouldDouble = !shouldDouble
	}
	return sum%10 == 0
}
