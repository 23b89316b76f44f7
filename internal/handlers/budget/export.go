package budget

import (
	"log"
	"net/http"

	"github.com/xuri/excelize/v2"

	"github.com/evn/budget_backendl/internal/middleware"
	"github.com/evn/budget_backendl/internal/models"
	"github.com/evn/budget_backendl/internal/pkg/apperrors"
	"github.com/evn/budget_backendl/internal/pkg/response"
	"github.com/evn/budget_backendl/internal/repositories"
)

// ExportHandler отдаёт xlsx-отчёт с доходами и расходами пользователя.
func ExportHandler(repo repositories.EntryRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.GetSessionUser(r.Context())
		if !ok {
			response.RespondWithAppError(w, apperrors.ErrUnauthenticated)
			return
		}

		incomes, err := repo.ListByUser(r.Context(), models.KindIncome, user.UserID)
		if err != nil {
			response.RespondWithAppError(w, err)
			return
		}
		expenses, err := repo.ListByUser(r.Context(), models.KindExpense, user.UserID)
		if err != nil {
			response.RespondWithAppError(w, err)
			return
		}

		f := excelize.NewFile()
		defer f.Close()

		if err := f.SetSheetName("Sheet1", "Incomes"); err != nil {
			response.RespondWithError(w, http.StatusInternalServerError, "Failed to build report")
			return
		}
		if _, err := f.NewSheet("Expenses"); err != nil {
			response.RespondWithError(w, http.StatusInternalServerError, "Failed to build report")
			return
		}

		if err := writeSheet(f, "Incomes", incomes); err != nil {
			response.RespondWithError(w, http.StatusInternalServerError, "Failed to build report")
			return
		}
		if err := writeSheet(f, "Expenses", expenses); err != nil {
			response.RespondWithError(w, http.StatusInternalServerError, "Failed to build report")
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="budget.xlsx"`)
		if err := f.Write(w); err != nil {
			log.Printf("failed to write xlsx report: %v", err)
		}
	}
}

func writeSheet(f *excelize.File, sheet string, entries []models.Entry) error {
	headers := []string{"ID", "Amount", "Currency"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	for row, entry := range entries {
		values := []interface{}{entry.ID, entry.Amount, string(entry.Currency)}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}
