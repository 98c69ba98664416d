package model

type Market struct {
	ID    int64  `db:"market_id" json:"id"`
	Title string `db:"market_title" json:"title"`
}

type Product struct {
	ID       int64  `db:"product_id" json:"id"`
	Name     string `db:"product_name" json:"name"`
	MarketID int64  `db:"market_id" json:"market_id"`
	Count    int64  `db:"product_count" json:"count"`
}

// ProductRecord is a product joined with its market title.
type ProductRecord struct {
	Name   string `db:"product_name" json:"name"`
	Market string `db:"market_title" json:"market"`
	Count  int64  `db:"product_count" json:"count"`
}
