package handler

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/Sarankumarr01/Budget-Planner-main/internal/analytics"
	"github.com/Sarankumarr01/Budget-Planner-main/internal/models"
	"github.com/Sarankumarr01/Budget-Planner-main/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var exportColumns = []string{"date", "type", "category", "description", "amount"}

// ImportExportHandler moves transactions in and out as CSV and XLSX files.
type ImportExportHandler struct {
	DB         *gorm.DB
	FetchLimit int
}

func NewImportExportHandler(db *gorm.DB, fetchLimit int) *ImportExportHandler {
	if fetchLimit <= 0 {
		fetchLimit = 10000
	}
	return &ImportExportHandler{DB: db, FetchLimit: fetchLimit}
}

// ImportCSV ingests a multipart CSV upload. Bad rows are reported, good rows
// are inserted; a file with some bad rows is still a success.
func (h *ImportExportHandler) ImportCSV(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "file is required")
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "only CSV files are supported")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "open upload failed")
		return
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "empty or unreadable CSV")
		return
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	imported := 0
	var rowErrors []string
	// Data rows are numbered from 2, matching how the file looks in a
	// spreadsheet with its header on row 1.
	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}

		amount, err := strconv.ParseFloat(field(record, "amount"), 64)
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: invalid amount", rowNum))
			continue
		}

		// the default only applies when the file has no type column at all;
		// a present-but-blank cell is a bad value like any other
		txnType := strings.ToLower(field(record, "type"))
		if _, hasTypeCol := col["type"]; !hasTypeCol && txnType == "" {
			txnType = models.TypeExpense
		}
		if txnType != models.TypeIncome && txnType != models.TypeExpense {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: type must be income or expense", rowNum))
			continue
		}

		txn := models.Transaction{
			UserID:      user.ID,
			Date:        field(record, "date"),
			Amount:      amount,
			Description: field(record, "description"),
			Category:    field(record, "category"),
			Type:        txnType,
		}
		if err := h.DB.Create(&txn).Error; err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		imported++
	}

	util.Success(c, util.Response{
		"imported": imported,
		"errors":   rowErrors,
	})
}

// exportRows fetches the rows for an export, optionally restricted to the
// fiscal year (April..March) given by the fiscal_year query parameter.
func (h *ImportExportHandler) exportRows(c *gin.Context, userID string) ([]models.Transaction, string, bool) {
	suffix := ""
	var txns []models.Transaction
	err := h.DB.Where("user_id = ?", userID).
		Order("date DESC").Limit(h.FetchLimit).Find(&txns).Error
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query transactions failed")
		return nil, "", false
	}

	if raw := c.Query("fiscal_year"); raw != "" {
		startYear, err := strconv.Atoi(raw)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "fiscal_year must be an integer")
			return nil, "", false
		}
		prefixes := analytics.FiscalYearPrefixes(startYear)
		filtered := txns[:0]
		for _, t := range txns {
			for _, p := range prefixes {
				if strings.HasPrefix(t.Date, p) {
					filtered = append(filtered, t)
					break
				}
			}
		}
		txns = filtered
		suffix = fmt.Sprintf("_FY%d", startYear)
	}
	return txns, suffix, true
}

// ExportCSV streams the user's transactions as a CSV attachment.
func (h *ImportExportHandler) ExportCSV(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	txns, suffix, ok := h.exportRows(c, user.ID)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="transactions%s.csv"`, suffix))

	w := csv.NewWriter(c.Writer)
	_ = w.Write(exportColumns)
	for _, t := range txns {
		_ = w.Write([]string{
			t.Date,
			t.Type,
			t.Category,
			t.Description,
			strconv.FormatFloat(t.Amount, 'f', -1, 64),
		})
	}
	w.Flush()
}

// ExportXLSX writes the same rows as a spreadsheet.
func (h *ImportExportHandler) ExportXLSX(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	txns, suffix, ok := h.exportRows(c, user.ID)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Transactions"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for i, name := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}
	for row, t := range txns {
		values := []interface{}{t.Date, t.Type, t.Category, t.Description, t.Amount}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="transactions%s.xlsx"`, suffix))
	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "write workbook failed")
	}
}
