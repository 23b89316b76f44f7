package models

// EntryKind — вид записи бюджета.
type EntryKind string

const (
	KindIncome  EntryKind = "income"
	KindExpense EntryKind = "expense"
)

// Currency — поддерживаемые валюты.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyRUB Currency = "RUB"
)

func (c Currency) Valid() bool {
	return c == CurrencyUSD || c == CurrencyRUB
}

// Entry — запись о доходе или расходе. Записи неизменяемы и не удаляются.
type Entry struct {
	ID       string    `json:"id" bson:"_id"`
	Kind     EntryKind `json:"-" bson:"-"`
	UserID   int       `json:"user_id" bson:"user_id"`
	Amount   int       `json:"amount" bson:"amount"`
	Currency Currency  `json:"currency" bson:"currency"`
}

type CreateEntryRequest struct {
	Amount   int      `json:"amount"`
	Currency Currency `json:"currency"`
}
