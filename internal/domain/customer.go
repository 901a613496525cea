package domain

// Customer is a rental-shop customer row.
type Customer struct {
	ID      string `json:"id"`
	FName   string `json:"f_name"`
	LName   string `json:"l_name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Active  bool   `json:"active"`
	Email   string `json:"email"`
}
