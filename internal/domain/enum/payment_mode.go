package enum

import "strings"

// DefaultPaymentMode is recorded when a billing submission names no mode.
const DefaultPaymentMode = "Cash"

// PaymentBucket is the reconciliation bucket a payment mode settles into.
type PaymentBucket string

const (
	PaymentBucketCash   PaymentBucket = "cash"
	PaymentBucketOnline PaymentBucket = "online"
)

// PaymentBucketOf classifies a free-text payment mode. Any mode containing
// "online" (case-insensitive) is online; everything else, including empty and
// unrecognized modes, is cash.
func PaymentBucketOf(mode string) PaymentBucket {
	if strings.Contains(strings.ToLower(mode), "online") {
		return PaymentBucketOnline
	}
	return PaymentBucketCash
}

// NormalizePaymentMode trims the mode and substitutes DefaultPaymentMode when blank.
func NormalizePaymentMode(mode string) string {
	mode = strings.TrimSpace(mode)
	if mode == "" {
		return DefaultPaymentMode
	}
	return mode
}

// KeepsReference reports whether a payment reference is stored for mode.
// Only a mode that is exactly "online" (any case) keeps its reference id.
func KeepsReference(mode string) bool {
	return strings.EqualFold(mode, "online")
}
