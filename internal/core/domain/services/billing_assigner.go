package services

import (
	"strings"

	"fulfillment/internal/core/domain/model/shipment"
)

// BillingAssigner maps a carrier code to the account that pays for the shipment.
// Unknown carriers get no assignment; that is not an edge case.
type BillingAssigner struct {
	accounts map[string]shipment.BillingAccount
}

// NewBillingAssigner returns an assigner over accounts, keyed by carrier code.
func NewBillingAssigner(accounts map[string]shipment.BillingAccount) BillingAssigner {
	normalized := make(map[string]shipment.BillingAccount, len(accounts))
	for carrier, acct := range accounts {
		if acct.Party == "" {
			acct.Party = shipment.PartyMyAccount
		}
		normalized[strings.ToLower(carrier)] = acct
	}
	return BillingAssigner{accounts: normalized}
}

// Assign returns the account for carrierCode and whether one is configured.
func (b BillingAssigner) Assign(carrierCode string) (shipment.BillingAccount, bool) {
	acct, ok := b.accounts[strings.ToLower(carrierCode)]
	return acct, ok
}
