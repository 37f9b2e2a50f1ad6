package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Application is a single row of the applications table.
type Application struct {
	// ID is the primary key assigned by the bot.
	ID int64 `json:"id"`

	// UserID is the Telegram user that submitted the application.
	UserID int64 `json:"userId"`

	// Tariff is the name of the selected tariff plan.
	Tariff string `json:"tariff"`

	// Name is the applicant's full name.
	Name string `json:"name"`

	// Price is the monthly price. The bot stores it as text, so a value that
	// is NULL or not a number is reported as invalid rather than failing the read.
	Price decimal.NullDecimal `json:"price"`

	// Phone is the contact phone number.
	Phone string `json:"phone"`

	// Email is the contact email address. It is optional in the bot's form.
	Email string `json:"email,omitempty"`

	// Address is the connection address.
	Address string `json:"address"`

	// CreatedAt is when the application was submitted.
	// It is the zero time when the stored value could not be parsed.
	CreatedAt time.Time `json:"createdAt"`

	// Status is the workflow state of the application.
	Status Status `json:"status"`
}

// PriceString returns the price formatted for display, or "-" when unknown.
func (a *Application) PriceString() string {
	if !a.Price.Valid {
		return "-"
	}
	return a.Price.Decimal.String()
}

// CreatedAtString returns the creation time formatted for display, or "-"
// when unknown.
func (a *Application) CreatedAtString() string {
	if a.CreatedAt.IsZero() {
		return "-"
	}
	return a.CreatedAt.Format("2006-01-02 15:04:05")
}
