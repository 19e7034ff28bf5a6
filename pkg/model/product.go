package model

import (
	"strings"
	"time"
)

// Product represents a product in the storefront catalog.
// From the client's perspective it is immutable except via admin calls.
//
// Product 表示店面目录中的产品。
// 从客户端的角度看，除管理员调用外它是不可变的。
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Category      string    `json:"category"`
	StockQuantity int       `json:"stockQuantity"`
	ImageURL      string    `json:"imageUrl"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// InCategory reports whether the product belongs to the named category,
// compared case-insensitively.
//
// InCategory 报告产品是否属于指定类别（不区分大小写比较）。
func (p Product) InCategory(category string) bool {
	return strings.EqualFold(p.Category, category)
}

// CreateProductRequest is the admin request body for creating a product.
// CreateProductRequest 是管理员创建产品的请求体。
type CreateProductRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	StockQuantity int     `json:"stockQuantity"`
	ImageURL      string  `json:"imageUrl"`
}

// Validate checks the request before it is sent to the backend.
// Validate 在请求发送到后端之前对其进行检查。
func (r CreateProductRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errValidation("product name is required")
	}
	if r.Price < 0 {
		return errValidation("product price must not be negative")
	}
	if r.StockQuantity < 0 {
		return errValidation("stock quantity must not be negative")
	}
	return nil
}

// UpdateProductRequest is the admin request body for updating a product.
// Nil fields are left unchanged by the backend.
//
// UpdateProductRequest 是管理员更新产品的请求体。
// 为nil的字段后端保持不变。
type UpdateProductRequest struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	Category      *string  `json:"category,omitempty"`
	StockQuantity *int     `json:"stockQuantity,omitempty"`
	ImageURL      *string  `json:"imageUrl,omitempty"`
}

// Validate checks the request before it is sent to the backend.
// Validate 在请求发送到后端之前对其进行检查。
func (r UpdateProductRequest) Validate() error {
	if r.Price != nil && *r.Price < 0 {
		return errValidation("product price must not be negative")
	}
	if r.StockQuantity != nil && *r.StockQuantity < 0 {
		return errValidation("stock quantity must not be negative")
	}
	return nil
}
