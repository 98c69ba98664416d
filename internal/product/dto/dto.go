package dto

type ProductFilters struct {
	Name *string // Nil selects all, otherwise exact and case-sensitive; "" matches empty names
}
