package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"aspcranes/repository"
	"aspcranes/utils"

	"go.uber.org/zap"
)

type PDFHandler struct {
	Repo     *repository.PDFRepository
	SavePath string
	Logger   *zap.Logger
}

// QuotationPDF handles the API request to generate and save a quotation PDF
func (h *PDFHandler) QuotationPDF(w http.ResponseWriter, r *http.Request) {
	quotationID := r.URL.Query().Get("id")
	if quotationID == "" {
		http.Error(w, "missing quotation id", http.StatusBadRequest)
		return
	}

	// Ensure save directory exists
	saveDir := h.SavePath
	if saveDir == "" {
		saveDir = "./pdfs"
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		http.Error(w, "failed to create save directory: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// Generate PDF bytes
	pdfBytes, err := utils.GenerateQuotationPDF(h.Repo, quotationID)
	if err != nil {
		http.Error(w, "failed to generate PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if len(pdfBytes) == 0 {
		http.Error(w, "no quotation found", http.StatusNotFound)
		return
	}

	// Save PDF to file
	filename := fmt.Sprintf("quotation_%s_%d.pdf", quotationID, time.Now().Unix())
	savePath := filepath.Join(saveDir, filename)

	if err := os.WriteFile(savePath, pdfBytes, 0644); err != nil {
		http.Error(w, "failed to save PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// Push to R2 so the frontend can link the PDF. The local file already
	// exists, an upload failure downgrades the response, never fails it.
	fileURL := filename
	if utils.R2Enabled() {
		if publicURL, err := utils.UploadToR2(pdfBytes, filename); err != nil {
			h.Logger.Warn("pdf upload failed",
				zap.String("quotationId", quotationID),
				zap.Error(err))
		} else {
			fileURL = publicURL
		}
	}

	// Record pdf bookkeeping on the quotation
	if err := h.Repo.QuotationRepo.UpdatePDFInfo(quotationID, fileURL, time.Now()); err != nil {
		// Log the error but don't block the response
		h.Logger.Warn("pdf bookkeeping update failed",
			zap.String("quotationId", quotationID),
			zap.Error(err))
	}

	// Respond with success
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(fmt.Sprintf(`{"success":true,"file":"%s","url":"%s"}`, filename, fileURL)))
}

// deletePDFObject removes an uploaded quotation PDF by its public URL.
// Quotations from R2-less deployments store a bare filename, nothing to do.
func deletePDFObject(publicURL string) error {
	if !utils.R2Enabled() || !strings.HasPrefix(publicURL, "http") {
		return nil
	}
	return utils.DeleteFromR2(publicURL)
}
