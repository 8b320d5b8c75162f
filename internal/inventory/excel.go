package inventory

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/storeware/stockroom/internal/domain"
)

// ExportSheet is the sheet name of generated workbooks.
const ExportSheet = "Products"

// excelColumns maps spreadsheet headers to product attributes, in
// export column order. Import matches headers by name, so column order
// of an uploaded file does not matter.
var excelColumns = []string{
	"id",
	"name",
	"image",
	"material",
	"size",
	"description",
	"manufacturer",
	"quantity",
	"price",
	"total_price",
	"delivery_date",
	"supplier",
	"availability",
}

// ExcelBridge converts between product records and xlsx workbooks.
type ExcelBridge struct {
	repo ProductRepository
}

func NewExcelBridge(repo ProductRepository) *ExcelBridge {
	return &ExcelBridge{repo: repo}
}

// Export writes every product into a single-sheet workbook under dir
// and returns the file path. No filter is applied.
func (b *ExcelBridge) Export(ctx context.Context, dir string) (string, error) {
	products, err := b.repo.List(ctx, ProductFilter{})
	if err != nil {
		return "", err
	}

	xf := excelize.NewFile()
	xf.SetSheetName("Sheet1", ExportSheet)
	for col, header := range excelColumns {
		xf.SetCellValue(ExportSheet, cellAxis(col, 1), header)
	}
	for i, p := range products {
		row := i + 2
		values := []interface{}{
			p.ID, p.Name, p.Image, p.Material, p.Size, p.Description,
			p.Manufacturer, p.Quantity, p.Price, p.TotalPrice,
			p.DeliveryDate, p.Supplier, p.Availability,
		}
		for col, v := range values {
			xf.SetCellValue(ExportSheet, cellAxis(col, row), v)
		}
	}

	name := fmt.Sprintf("products_export_%s.xlsx", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := xf.SaveAs(path); err != nil {
		return "", errors.Wrap(err, "write export workbook")
	}
	return path, nil
}

// Import reads the first sheet of an uploaded workbook and inserts one
// new product per data row. Import is always additive; ids in the file
// are ignored and total_price is recomputed from quantity and price.
// Inserts run sequentially; the first failure aborts the import and the
// returned count reports the rows already inserted.
func (b *ExcelBridge) Import(ctx context.Context, r io.Reader) (int, error) {
	xf, err := excelize.OpenReader(r)
	if err != nil {
		return 0, errors.Wrap(err, "read workbook")
	}
	rows := xf.GetRows(xf.GetSheetName(1))
	if len(rows) < 2 {
		return 0, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	imported := 0
	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		p := productFromRow(headers, row)
		if _, err := b.repo.Create(ctx, &p); err != nil {
			return imported, errors.Wrapf(err, "import aborted after %d rows", imported)
		}
		imported++
	}
	return imported, nil
}

// ImportFile imports a workbook previously saved to disk.
func (b *ExcelBridge) ImportFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "open uploaded workbook")
	}
	defer f.Close()
	return b.Import(ctx, f)
}

// productFromRow maps cells to attributes by header name. Missing text
// cells become empty strings, missing or malformed numeric cells zero.
func productFromRow(headers []string, row []string) domain.Product {
	cells := make(map[string]string, len(headers))
	for i, h := range headers {
		if h == "" || i >= len(row) {
			continue
		}
		cells[h] = strings.TrimSpace(row[i])
	}
	quantity := cast.ToInt(cells["quantity"])
	price := cast.ToFloat64(cells["price"])
	return domain.Product{
		Name:         cells["name"],
		Image:        cells["image"],
		Material:     cells["material"],
		Size:         cells["size"],
		Description:  cells["description"],
		Manufacturer: cells["manufacturer"],
		Quantity:     quantity,
		Price:        price,
		DeliveryDate: cells["delivery_date"],
		Supplier:     cells["supplier"],
		Availability: cells["availability"],
	}
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func cellAxis(col, row int) string {
	return fmt.Sprintf("%s%d", excelize.ToAlphaString(col), row)
}
