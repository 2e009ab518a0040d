package renderer

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/cashbook/backend/internal/application/adapter"
)

const cashBookSheet = "Cash Book"

func cashBookXLSX(doc adapter.CashBookDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", cashBookSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	f.SetCellValue(cashBookSheet, "A1", doc.Company)
	f.SetCellValue(cashBookSheet, "A2", "Cash Book "+doc.Range.Label())
	f.SetCellStyle(cashBookSheet, "A1", "A2", bold)

	const headerRow = 4
	for i, header := range cashBookHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		f.SetCellValue(cashBookSheet, cell, header)
	}
	f.SetCellStyle(cashBookSheet, "A4", "F4", bold)

	row := headerRow
	for _, line := range doc.Rows {
		row++
		f.SetCellValue(cashBookSheet, fmt.Sprintf("A%d", row), line.Date.String())
		f.SetCellValue(cashBookSheet, fmt.Sprintf("B%d", row), line.Description)
		f.SetCellValue(cashBookSheet, fmt.Sprintf("C%d", row), line.Category)
		if line.Income != nil {
			f.SetCellValue(cashBookSheet, fmt.Sprintf("D%d", row), line.Income.InexactFloat64())
		}
		if line.Expense != nil {
			f.SetCellValue(cashBookSheet, fmt.Sprintf("E%d", row), line.Expense.InexactFloat64())
		}
		f.SetCellValue(cashBookSheet, fmt.Sprintf("F%d", row), line.Balance.InexactFloat64())
	}

	row++
	f.SetCellValue(cashBookSheet, fmt.Sprintf("B%d", row), "Total")
	f.SetCellValue(cashBookSheet, fmt.Sprintf("D%d", row), doc.TotalIncome.InexactFloat64())
	f.SetCellValue(cashBookSheet, fmt.Sprintf("E%d", row), doc.TotalExpense.InexactFloat64())
	f.SetCellValue(cashBookSheet, fmt.Sprintf("F%d", row), doc.FinalBalance.InexactFloat64())
	f.SetCellStyle(cashBookSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), bold)
	f.SetCellStyle(cashBookSheet, fmt.Sprintf("D%d", headerRow+1), fmt.Sprintf("F%d", row), money)

	f.SetColWidth(cashBookSheet, "A", "A", 12)
	f.SetColWidth(cashBookSheet, "B", "B", 40)
	f.SetColWidth(cashBookSheet, "C", "C", 18)
	f.SetColWidth(cashBookSheet, "D", "F", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
