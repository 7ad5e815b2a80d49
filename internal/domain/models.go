package domain

import "time"

type EmployeeRecord struct {
	Identity    string    `json:"identity"`
	DisplayName string    `json:"display_name"`
	JobTitle    string    `json:"job_title"`
	Department  string    `json:"department"`
	HireDate    time.Time `json:"hire_date"`
}

type AnniversaryQuery struct {
	MaxItems int
	Range    DateRange
}

// Anniversary is an EmployeeRecord annotated with its derived tenure.
type Anniversary struct {
	EmployeeRecord
	Years int        `json:"years"`
	Tier  TenureTier `json:"tier"`
	Unit  string     `json:"unit"`
}
