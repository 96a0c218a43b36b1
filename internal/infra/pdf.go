package infra

// pdf.go — PDF ticket generation using go-pdf/fpdf.
// Generates thermal receipt-style tickets: business name header, order
// number and timestamp, item table, bold total, and a credit notice when
// the sale created a cuenta por cobrar. Output goes to
// storagePath/ticket_{orden}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"keso/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateTicketPDF renders the receipt for a committed Venta and returns
// the absolute path of the generated file.
func GenerateTicketPDF(venta *model.Venta, businessName, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("ticket_%s.pdf", venta.NumeroOrden)
	filePath := filepath.Join(storagePath, fileName)

	// 74mm × 105mm ≈ thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, businessName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Comprobante de Venta", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Order info ───────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, venta.NumeroOrden, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, venta.Fecha.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 4, "Cliente: "+venta.Cliente, "", 1, "L", false, 0, "")
	if venta.Vendedor != "" {
		pdf.CellFormat(contentW, 4, "Vendedor: "+venta.Vendedor, "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Item table ───────────────────────────────────────────────────────────
	col1 := contentW * 0.52 // product name
	col2 := contentW * 0.16 // qty
	col3 := contentW * 0.32 // subtotal

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, item := range venta.Items {
		pdf.CellFormat(col1, 4, item.Nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 4, item.Cantidad.String(), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 4, item.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.Ln(2)

	// ── Total ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL", "T", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, venta.Total.StringFixed(2), "T", 1, "R", false, 0, "")

	if venta.Cobro != nil {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 7)
		pdf.CellFormat(contentW, 4, "VENTA A CRÉDITO — saldo pendiente", "", 1, "C", false, 0, "")
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "", 6)
	pdf.CellFormat(contentW, 3, "Gracias por su compra", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", filePath, err)
	}
	return filePath, nil
}
