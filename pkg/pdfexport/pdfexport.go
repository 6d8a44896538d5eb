package pdfexport

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"recipebox/internal/models"
)

const (
	nameColWidth   = 90.0
	unitColWidth   = 40.0
	amountColWidth = 40.0
	rowHeight      = 8.0
)

// Render produces a PDF document with the aggregated shopping list as a
// three-column table: ingredient, measurement unit, amount. The items are
// rendered in the order given.
func Render(title string, items []models.ShoppingListItem) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(nameColWidth, rowHeight, "Ingredient", "1", 0, "L", true, 0, "")
	pdf.CellFormat(unitColWidth, rowHeight, "Unit", "1", 0, "L", true, 0, "")
	pdf.CellFormat(amountColWidth, rowHeight, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, item := range items {
		pdf.CellFormat(nameColWidth, rowHeight, item.IngredientName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(unitColWidth, rowHeight, item.MeasurementUnit, "1", 0, "L", false, 0, "")
		pdf.CellFormat(amountColWidth, rowHeight, strconv.Itoa(item.TotalAmount), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render shopping list PDF: %w", err)
	}
	return buf.Bytes(), nil
}
