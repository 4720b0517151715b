package invoice

// Letterhead is the fixed company identity printed on every bill.
type Letterhead struct {
	Proprietor  string
	CompanyName string
	Address     string
	Phones      []string
	Terms       []string
	ThankYou    string
	ContactNote string
}

func DefaultLetterhead() Letterhead {
	return Letterhead{
		Proprietor:  "P. Kiran Kumar",
		CompanyName: "PAVAN KRISHNA TRAVELS (GOUD)",
		Address:     "Shop No. 3-3-158/1, Enugulagadda, Chowrastha, HANAMKONDA",
		Phones:      []string{"98494 58582", "98499 44429", "98496 58850"},
		Terms: []string{
			"Parking, Tollgates, Check Post, R.T.O, and State Taxes will be paid by the party",
			"Hyderabad entrance tax paid by party only",
		},
		ThankYou:    "Thank you for choosing PAVAN KRISHNA TRAVELS!",
		ContactNote: "For any queries, please contact us at the numbers mentioned above.",
	}
}
