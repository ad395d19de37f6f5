package domain

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// GiftCardStatus is the lifecycle state of an issued gift card.
// Cards are issued active; redemption and expiry are not modeled.
type GiftCardStatus string

const (
	GiftCardActive GiftCardStatus = "active"
)

// GiftCard is a prepaid code of fixed face value issued against a debit.
type GiftCard struct {
	ID          string
	UserID      string
	ProductName string
	Code        string
	Status      GiftCardStatus
	FaceValue   decimal.Decimal
	CreatedAt   time.Time
}

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateGiftCardCode builds a redemption code in the form
// {PRODUCT}-{6 random uppercase alphanumerics}, e.g. NETFLIX-7KQ2ZD.
func GenerateGiftCardCode(productName string) string {
	prefix := normalizeProductName(productName)

	buf := make([]byte, 6)
	rand.Read(buf)
	for i := range buf {
		buf[i] = codeAlphabet[int(buf[i])%len(codeAlphabet)]
	}

	return prefix + "-" + string(buf)
}

func normalizeProductName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(name)) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}
