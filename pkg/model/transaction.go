package model

import "time"

// TransactionRequest is the payload for creating a transaction on the API.
// Field names follow the server's snake_case contract.
type TransactionRequest struct {
	Amount           int      `json:"amount"`
	Cinema           string   `json:"cinema"`
	CustomerEmail    string   `json:"customer_email"`
	CustomerFullname string   `json:"customer_fullname"`
	CustomerPhone    string   `json:"customer_phone"`
	Location         string   `json:"location"`
	MovieID          int      `json:"movie_id"`
	PaymentMethodID  int      `json:"payment_method_id"`
	Seats            []string `json:"seat"`
	ShowDate         string   `json:"show_date"`
	ShowTime         string   `json:"show_time"`
}

// Transaction is a completed purchase as returned by the API.
type Transaction struct {
	ID            string    `json:"id"`
	MovieID       int       `json:"movie_id"`
	MovieTitle    string    `json:"movie_title"`
	Cinema        string    `json:"cinema"`
	Location      string    `json:"location"`
	ShowDate      string    `json:"show_date"`
	ShowTime      string    `json:"show_time"`
	Seats         []string  `json:"seat"`
	Amount        int       `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

// PaymentMethods maps method names accepted on the command line to the
// server's payment method ids.
var PaymentMethods = map[string]int{
	"gopay": 1,
	"ovo":   2,
	"dana":  3,
	"bca":   4,
	"bri":   5,
	"visa":  6,
}

// SalesPoint is one bucket of the admin ticket-sales aggregation.
type SalesPoint struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}
