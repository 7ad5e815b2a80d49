package directory

import "context"

// RawRecord is an employee tuple as the directory returns it. HireDate is
// left unparsed; callers decide what a usable date is.
type RawRecord struct {
	Identity    string `json:"identity" yaml:"identity"`
	DisplayName string `json:"display_name" yaml:"display_name"`
	JobTitle    string `json:"job_title" yaml:"job_title"`
	Department  string `json:"department" yaml:"department"`
	HireDate    string `json:"hire_date" yaml:"hire_date"`
}

// Source is the one capability the anniversary engine needs from a
// directory: everyone whose hire date month/day falls inside the window.
type Source interface {
	QueryHireDateAnniversaries(ctx context.Context, window Window) ([]RawRecord, error)
}
