// Package types - Project input types
package types

// ProjectRecord is one validated project row from the input workbook
type ProjectRecord struct {
	// Name identifies the project; never empty
	Name string `json:"name"`

	// FutureCapex is the base future capital expenditure in dollars
	FutureCapex float64 `json:"future_capex"`

	// LOMOunces is the base life-of-mine ounces
	LOMOunces float64 `json:"lom_ounces"`

	// OuncesMined is the number of ounces mined, used for expense derivation
	OuncesMined float64 `json:"ounces_mined"`
}

// Input workbook column names
const (
	ColumnProject     = "Project"
	ColumnFutureCapex = "Future_Capex"
	ColumnLOMOunces   = "LOM_Ounces"
	ColumnOuncesMined = "Ounces_Mined"
)

// RequiredColumns lists the input columns every workbook must carry
func RequiredColumns() []string {
	return []string{ColumnProject, ColumnFutureCapex, ColumnLOMOunces, ColumnOuncesMined}
}
