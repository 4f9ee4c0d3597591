package render

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"frontdesk/internal/domains/receipt/model"
)

const (
	sheetName     = "Receipt"
	defaultSheet  = "Sheet1"
	displayLayout = "02/01/2006"
	amountFormat  = "#,##0.00"
	lineHeaderRow = 9
)

type labels struct {
	Title, Tel, TaxID, Customer, Address, ReceiptNo, Date          string
	Description, Nights, UnitPrice, Total, RoomBooking, CheckInOut string
	TotalAmount, Deposits, Balance, Signature                      string
}

var labelsByLanguage = map[string]labels{
	model.LanguageEN: {
		Title: "Receipt", Tel: "Tel", TaxID: "Tax ID", Customer: "Customer name", Address: "Address",
		ReceiptNo: "Receipt no.", Date: "Date", Description: "Description", Nights: "No. of nights",
		UnitPrice: "Unit price", Total: "Total", RoomBooking: "Room booking", CheckInOut: "Check-in %s - Check-out %s",
		TotalAmount: "Total amount", Deposits: "Deposits paid", Balance: "Balance due", Signature: "(Authorized signature)",
	},
	model.LanguageTH: {
		Title: "ใบเสร็จรับเงิน", Tel: "โทร", TaxID: "เลขประจำตัวผู้เสียภาษี", Customer: "ชื่อลูกค้า", Address: "ที่อยู่",
		ReceiptNo: "เลขที่ใบเสร็จ", Date: "วันที่", Description: "รายการ", Nights: "จำนวนคืน",
		UnitPrice: "ราคาต่อหน่วย", Total: "รวม", RoomBooking: "ค่าห้องพัก", CheckInOut: "เช็คอิน %s - เช็คเอาท์ %s",
		TotalAmount: "ยอดรวมทั้งสิ้น", Deposits: "มัดจำที่ชำระแล้ว", Balance: "ยอดคงค้าง", Signature: "(ผู้มีอำนาจลงนาม)",
	},
}

// FileName is the workbook name a receipt is downloaded and archived under.
func FileName(receipt model.Receipt) string {
	return fmt.Sprintf("receipt-%s.xlsx", receipt.Number)
}

// XLSX renders the receipt as a single-sheet workbook.
func XLSX(receipt model.Receipt) ([]byte, error) {
	text, ok := labelsByLanguage[receipt.Language]
	if !ok {
		text = labelsByLanguage[model.LanguageEN]
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	w := &sheetWriter{file: f}

	w.set("A1", receipt.Hotel.Name)
	w.set("A2", receipt.Hotel.Address)
	w.set("A3", fmt.Sprintf("%s: %s", text.Tel, receipt.Hotel.Phone))
	w.set("A4", fmt.Sprintf("%s: %s", text.TaxID, receipt.Hotel.TaxID))
	w.set("D1", text.Title)

	w.set("A6", text.Customer)
	w.set("B6", receipt.Customer.Name)
	w.set("A7", text.Address)
	w.set("B7", receipt.Customer.Address)
	w.set("C6", text.ReceiptNo)
	w.set("D6", receipt.Number)
	w.set("C7", text.Date)
	w.set("D7", receipt.IssuedOn.Format(displayLayout))
	w.set("A8", text.Tel)
	w.set("B8", receipt.Customer.Phone)
	w.set("C8", text.TaxID)
	w.set("D8", receipt.Customer.TaxID)

	w.row(lineHeaderRow, text.Description, text.Nights, text.UnitPrice, text.Total)

	row := lineHeaderRow
	for _, line := range receipt.Lines {
		row++
		description := fmt.Sprintf("%s %s (%s)", text.RoomBooking, line.RoomNumber,
			fmt.Sprintf(text.CheckInOut, line.CheckInDate.Format(displayLayout), line.CheckOutDate.Format(displayLayout)))
		w.row(row, description, line.Nights, line.PricePerNight, line.Total)
	}

	lastLine := row

	row += 2
	w.row(row, "", "", text.TotalAmount, receipt.Total)
	w.row(row+1, "", "", text.Deposits, receipt.Deposits)
	w.row(row+2, "", "", text.Balance, receipt.Balance)
	w.set(cellName(4, row+4), text.Signature)

	w.boldRow(lineHeaderRow)
	w.boldRow(row)
	w.amounts(lineHeaderRow+1, lastLine, row, row+2)

	if w.err != nil {
		return nil, w.err
	}

	if err := f.SetColWidth(sheetName, "A", "A", 60); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	if err := f.SetColWidth(sheetName, "B", "D", 18); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

// sheetWriter keeps the first error so the layout above reads top to bottom.
type sheetWriter struct {
	file *excelize.File
	err  error
}

func (w *sheetWriter) set(cell string, value any) {
	if w.err != nil {
		return
	}

	if err := w.file.SetCellValue(sheetName, cell, value); err != nil {
		w.err = fmt.Errorf("set %s: %w", cell, err)
	}
}

func (w *sheetWriter) row(row int, values ...any) {
	for i, value := range values {
		w.set(cellName(i+1, row), value)
	}
}

func (w *sheetWriter) boldRow(row int) {
	if w.err != nil {
		return
	}

	style, err := w.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		w.err = fmt.Errorf("create style: %w", err)

		return
	}

	if err := w.file.SetCellStyle(sheetName, cellName(1, row), cellName(4, row), style); err != nil {
		w.err = fmt.Errorf("apply style: %w", err)
	}
}

func (w *sheetWriter) amounts(linesFrom, linesTo, totalsFrom, totalsTo int) {
	if w.err != nil {
		return
	}

	format := amountFormat
	style, err := w.file.NewStyle(&excelize.Style{CustomNumFmt: &format})
	if err != nil {
		w.err = fmt.Errorf("create style: %w", err)

		return
	}

	if linesTo >= linesFrom {
		if err := w.file.SetCellStyle(sheetName, cellName(3, linesFrom), cellName(4, linesTo), style); err != nil {
			w.err = fmt.Errorf("apply style: %w", err)

			return
		}
	}

	if err := w.file.SetCellStyle(sheetName, cellName(4, totalsFrom), cellName(4, totalsTo), style); err != nil {
		w.err = fmt.Errorf("apply style: %w", err)
	}
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)

	return name
}
