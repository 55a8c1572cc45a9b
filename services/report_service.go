package services

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/ieadaj/church-orders-api/models"
	"github.com/jung-kurt/gofpdf"
)

// GenerateOrdersReport renders the printable orders report as a single PDF
// blob: a centered title, a three-row summary table and, when any orders
// exist, one detail row per order in the given sequence. The whole document
// is built in memory; on any rendering failure no bytes are returned.
func GenerateOrdersReport(orders []models.Order, organizationName string, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Status and header strings carry accented characters (Produção,
	// Congregação); the translator maps them to the core-font codepage.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	// Title block
	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, tr(organizationName+"\nRelatório de Pedidos de Camisetas"), "", "C", false)
	pdf.Ln(8)

	// Summary table
	totalPieces := 0
	for _, order := range orders {
		totalPieces += order.Quantity
	}

	summary := [][2]string{
		{"Total de Pedidos:", strconv.Itoa(len(orders))},
		{"Total de Peças:", strconv.Itoa(totalPieces)},
		{"Data do Relatório:", generatedAt.Format("02/01/2006 15:04")},
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(211, 211, 211)
	for _, row := range summary {
		pdf.CellFormat(76, 8, tr(row[0]), "1", 0, "L", true, 0, "")
		pdf.CellFormat(51, 8, tr(row[1]), "1", 1, "L", true, 0, "")
	}
	pdf.Ln(10)

	if len(orders) == 0 {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 8, tr("Nenhum pedido encontrado."), "", 1, "L", false, 0, "")
	} else {
		renderDetailTable(pdf, tr, orders)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render orders report: %w", err)
	}

	return buf.Bytes(), nil
}

// renderDetailTable draws the per-order table with its header row
func renderDetailTable(pdf *gofpdf.Fpdf, tr func(string) string, orders []models.Order) {
	headers := []string{"Congregação", "Responsável", "Lote", "Modelo", "Tamanho", "Qtd", "Status", "Data"}
	widths := []float64{34, 30, 18, 26, 18, 12, 26, 22}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(255, 255, 255)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, tr(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetFillColor(245, 245, 220)
	pdf.SetTextColor(0, 0, 0)
	for _, order := range orders {
		cells := []string{
			order.CongregationName,
			order.ResponsibleName,
			order.LotNumber,
			order.Model,
			order.Size,
			strconv.Itoa(order.Quantity),
			order.Status,
			order.OrderDate.Format("02/01/2006"),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, tr(cell), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
}

// ReportFilename builds the suggested download filename for a report
// generated at the given instant, unique to the second.
func ReportFilename(generatedAt time.Time) string {
	return fmt.Sprintf("relatorio_pedidos_%s.pdf", generatedAt.Format("20060102_150405"))
}
