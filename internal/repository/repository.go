package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced row does not exist
var ErrNotFound = errors.New("record not found")

// Sort is an explicit listing order. Every listing query takes one instead
// of relying on an implicit default in the query itself.
type Sort struct {
	Field string
	Desc  bool
}

// CreatedDesc orders by creation time, newest first. This is the storefront's
// default listing order.
var CreatedDesc = Sort{Field: "created_at", Desc: true}

// NameAsc orders alphabetically by name
var NameAsc = Sort{Field: "name"}

// Clause renders the sort as an ORDER BY expression
func (s Sort) Clause() string {
	if s.Field == "" {
		s = CreatedDesc
	}
	if s.Desc {
		return fmt.Sprintf("%s DESC", s.Field)
	}
	return s.Field
}
