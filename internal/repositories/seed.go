package repositories

import (
	"context"

	"github.com/evn/budget_backendl/internal/models"
)

// SeedEntries наполняет пустой репозиторий демонстрационными записями.
func SeedEntries(ctx context.Context, repo EntryRepository) error {
	for userID := 1; userID <= 4; userID++ {
		existing, err := repo.ListByUser(ctx, models.KindIncome, userID)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return nil
		}
	}

	seed := []models.Entry{
		{Kind: models.KindIncome, UserID: 1, Amount: 1000, Currency: models.CurrencyUSD},
		{Kind: models.KindIncome, UserID: 2, Amount: 1500, Currency: models.CurrencyRUB},
		{Kind: models.KindIncome, UserID: 3, Amount: 2000, Currency: models.CurrencyUSD},
		{Kind: models.KindIncome, UserID: 4, Amount: 2500, Currency: models.CurrencyRUB},
		{Kind: models.KindExpense, UserID: 1, Amount: 500, Currency: models.CurrencyUSD},
		{Kind: models.KindExpense, UserID: 2, Amount: 700, Currency: models.CurrencyRUB},
		{Kind: models.KindExpense, UserID: 3, Amount: 900, Currency: models.CurrencyUSD},
		{Kind: models.KindExpense, UserID: 4, Amount: 1200, Currency: models.CurrencyRUB},
	}

	for _, entry := range seed {
		entry := entry
		if _, err := repo.Create(ctx, &entry); err != nil {
			return err
		}
	}
	return nil
}
