package util

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func StringPointer(s string) *string {
	return &s
}

func FloatPointer(f float64) *float64 {
	return &f
}

func DecimalPointer(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func UUIDPointer(id uuid.UUID) *uuid.UUID {
	return &id
}
