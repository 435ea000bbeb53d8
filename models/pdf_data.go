package models

type QuotationPDFData struct {
	Company    *CompanyProfile // letterhead details
	Quotation  *Quotation      // quotation being printed
	Contacts   string          // formatted phone numbers
	Date       string          // formatted quotation date
	Equipment  string          // display name of what is quoted
	Machines   []SelectedMachine
	Total      float64         // grand total including GST when applicable
	TotalWords string
}
