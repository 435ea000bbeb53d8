package models

import "time"

type PhoneEntry struct {
	Number string `json:"number" bson:"number" db:"number"`
	Label  string `json:"label" bson:"label" db:"label"`
}

// CompanyProfile is the letterhead data printed on quotation PDFs.
type CompanyProfile struct {
	ID          string       `json:"id" bson:"_id,omitempty" db:"id"`
	CompanyName string       `json:"companyName" bson:"companyName" db:"company_name"`
	Address     string       `json:"address" bson:"address" db:"address"`
	City        string       `json:"city" bson:"city" db:"city"`
	State       string       `json:"state" bson:"state" db:"state"`
	Pincode     string       `json:"pincode" bson:"pincode" db:"pincode"`
	GSTIN       string       `json:"gstin" bson:"gstin" db:"gstin"`
	Footnote    string       `json:"footnote" bson:"footnote" db:"footnote"`
	Phones      []PhoneEntry `json:"phones" bson:"phones" db:"phones"`
	CreatedAt   time.Time    `json:"createdAt" bson:"createdAt" db:"created_at"`
}
