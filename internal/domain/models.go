package domain

import "strings"

// Category категория каталога
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion,omitempty"`
}

// Product представляет товар магазина
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"nombre"`
	Description string    `json:"descripcion"`
	Price       float64   `json:"precio"`
	Stock       int64     `json:"stock"`
	ImageURL    string    `json:"imagenUrl"`
	Category    *Category `json:"categoria"`
}

// Role роль пользователя
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "cliente"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// User пользователь. Password only travels on writes.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Address  string `json:"direccion"`
	Phone    string `json:"telefono"`
	Role     Role   `json:"rol"`
}

// IsAdmin is a navigation gate only; the API enforces access on its side.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// OrderDetail позиция в заказе (boleta)
type OrderDetail struct {
	ID        int64   `json:"id"`
	Quantity  int64   `json:"cantidad"`
	UnitPrice float64 `json:"precioUnitario"`
	Subtotal  float64 `json:"subtotal"`
	Product   Product `json:"producto"`
}

// Order сущность заказа, создаётся на стороне API
type Order struct {
	ID      int64         `json:"id"`
	Date    *string       `json:"fecha"`
	Total   *float64      `json:"total"`
	User    *User         `json:"usuario"`
	Details []OrderDetail `json:"detalles"`
}

// DatePrefix returns the yyyy-MM-dd prefix of the order timestamp,
// or false when the timestamp is missing or too short.
func (o Order) DatePrefix() (string, bool) {
	if o.Date == nil || len(*o.Date) < 10 {
		return "", false
	}
	return (*o.Date)[:10], true
}

// TotalOrZero treats a missing total as 0.
func (o Order) TotalOrZero() float64 {
	if o.Total == nil {
		return 0
	}
	return *o.Total
}

// EntityRef ссылка {"id": N}
type EntityRef struct {
	ID int64 `json:"id"`
}

// OrderItem позиция запроса на создание заказа. No unit price: the API prices the order.
type OrderItem struct {
	Product  EntityRef `json:"producto"`
	Quantity int64     `json:"cantidad"`
}

// OrderRequest тело POST api/boletas
type OrderRequest struct {
	User    EntityRef   `json:"usuario"`
	Details []OrderItem `json:"detalles"`
}

// LoginRequest тело POST api/usuarios/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// helper: case-insensitive contains
func ContainsIgnoreCase(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// ShippingOption способ доставки
type ShippingOption struct {
	ID   string  `json:"id" yaml:"id"`
	Name string  `json:"name" yaml:"name"`
	Cost float64 `json:"cost" yaml:"cost"`
}
