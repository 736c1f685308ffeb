package shipment

// PartyMyAccount bills the shipment to the shipper's own carrier account.
const PartyMyAccount = "my_account"

// BillingAccount is who pays the carrier for a shipment.
type BillingAccount struct {
	Party         string `yaml:"party"          json:"party"`
	CountryCode   string `yaml:"country_code"   json:"countryCode"`
	AccountNumber string `yaml:"account_number" json:"accountNumber"`
}

// IsZero reports whether no account has been assigned.
func (b BillingAccount) IsZero() bool {
	return b == BillingAccount{}
}
