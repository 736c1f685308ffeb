package order

// AdvancedOptions holds the platform's advanced order options that triage reads or sets.
//
// Location is the warehouse bin recorded in the platform's customField2.
type AdvancedOptions struct {
	MergedOrSplit bool
	StoreID       int64
	Location      string
	CustomField1  string
	CustomField3  string
}
