package pdfexport_test

import (
	"bytes"
	"testing"

	"recipebox/internal/models"
	"recipebox/pkg/pdfexport"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	document, err := pdfexport.Render("Shopping list", []models.ShoppingListItem{
		{IngredientName: "flour", MeasurementUnit: "g", TotalAmount: 300},
		{IngredientName: "sugar", MeasurementUnit: "g", TotalAmount: 50},
	})

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(document, []byte("%PDF")))
}

func TestRenderEmptyList(t *testing.T) {
	document, err := pdfexport.Render("Shopping list", nil)

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(document, []byte("%PDF")))
}
