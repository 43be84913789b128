package dto

import "time"

// CreateProductRequest entrada para crear un producto del catálogo.
type CreateProductRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Code         string `json:"code" validate:"omitempty,max=100"`
	InitialStock int64  `json:"initial_stock" validate:"min=0"`
}

// ProductResponse salida de un producto con su stock actual.
type ProductResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code,omitempty"`
	Stock     int64     `json:"stock"`
	LowStock  bool      `json:"low_stock"`
	CreatedAt time.Time `json:"created_at"`
}

// StockResponse salida de la consulta de stock derivado del ledger.
type StockResponse struct {
	ProductID int64 `json:"product_id"`
	Stock     int64 `json:"stock"`
}
