package utils

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"aspcranes/models"
	"aspcranes/repository"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// GenerateQuotationPDF renders one quotation as an A4 PDF. Returns nil bytes
// without error when the quotation does not exist.
func GenerateQuotationPDF(repo *repository.PDFRepository, quotationID string) ([]byte, error) {
	// Fetch company letterhead
	profile, err := repo.GetProfileForPDF()
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &models.CompanyProfile{}
	}

	// Fetch quotation
	quotation, err := repo.GetQuotationForPDF(quotationID)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, nil
	}

	// Format quotation date safely
	formattedDate := "-"
	if !quotation.CreatedAt.IsZero() {
		formattedDate = quotation.CreatedAt.Format("02-Jan-2006")
	}

	// Prepare contact numbers
	contacts := ""
	for _, p := range profile.Phones {
		contacts += p.Number + "(" + p.Label + "), "
	}
	if len(contacts) > 2 {
		contacts = contacts[:len(contacts)-2]
	}

	// The cost table always shows machine rows. Legacy single-equipment
	// quotations are presented as one row at the rate of their order type.
	machines := quotation.SelectedMachines
	if len(machines) == 0 && quotation.SelectedEquip != nil {
		machines = []models.SelectedMachine{{
			ID:               quotation.SelectedEquip.ID,
			Name:             quotation.SelectedEquip.Name,
			BaseRate:         quotation.SelectedEquip.BaseRates.ForOrderType(quotation.OrderType),
			Quantity:         1,
			RunningCostPerKm: quotation.SelectedEquip.RunningCostPerKm,
		}}
	}

	tmpl, err := template.ParseFiles("templates/quotation_template.html")
	if err != nil {
		return nil, err
	}

	data := models.QuotationPDFData{
		Company:    profile,
		Quotation:  quotation,
		Contacts:   contacts,
		Date:       formattedDate,
		Equipment:  quotation.EquipmentName,
		Machines:   machines,
		Total:      quotation.TotalRent,
		TotalWords: AmountInWords(quotation.TotalRent),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}

	// Create temp HTML file
	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "quotation_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, buf.Bytes(), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	// Generate PDF with headless Chrome
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
