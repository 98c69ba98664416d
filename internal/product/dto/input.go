package dto

// AddProductInput is taken as given: empty names and zero or negative counts
// are stored unchanged.
type AddProductInput struct {
	Name   string
	Market string
	Count  int64
}
