package record

import "github.com/shopspring/decimal"

// NewRecordInput represents the request body for creating a record. The
// total is computed server-side from amount and price.
type NewRecordInput struct {
	Name   string          `json:"name" validate:"required,max=100"`
	Amount decimal.Decimal `json:"amount" validate:"required"`
	Price  decimal.Decimal `json:"price" validate:"required"`
}

// RenameInput represents the request body for renaming a record.
type RenameInput struct {
	Name string `json:"name" validate:"required,max=100"`
}
