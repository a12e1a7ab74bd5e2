package enum

import "strings"

// DonationItemName is the pseudo catalog entry selected for free-form donations.
const DonationItemName = "Donation"

// donationLabelSeparator joins the donation item name and its purpose.
const donationLabelSeparator = " – "

// DonationLabel builds the stored item name for a donation.
func DonationLabel(purpose string) string {
	return DonationItemName + donationLabelSeparator + purpose
}

// IsDonationLabel reports whether a stored item name is a donation
// (case-insensitive "donation" prefix).
func IsDonationLabel(name string) bool {
	return strings.HasPrefix(strings.ToLower(name), "donation")
}
