package domain

// Subscription es un nivel de suscripcion contratable.
type Subscription struct {
	TypeID    int     `json:"subscription_type_id" xml:"subscription_type_id"`
	Name      string  `json:"subscription_name" xml:"subscription_name"`
	PriceEuro float64 `json:"subscription_price_euro" xml:"subscription_price_euro"`
}

// PaymentStatus es el resultado tipado del cobro de una suscripcion.
type PaymentStatus int

const (
	PaymentOK PaymentStatus = iota
	PaymentUserNotFound
	PaymentInvalidType
	PaymentStillActive
)
