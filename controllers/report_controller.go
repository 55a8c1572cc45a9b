package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ieadaj/church-orders-api/config"
	"github.com/ieadaj/church-orders-api/models"
	"github.com/ieadaj/church-orders-api/services"
)

// GenerateOrdersReport handles GET /api/v1/orders/report - renders the full
// order set as a PDF and streams it as a download. The operation is atomic:
// a rendering failure returns an error envelope and no partial document.
func GenerateOrdersReport(c *gin.Context) {
	db := config.GetDB()

	var orders []models.Order
	if err := db.Order("created_at DESC, id DESC").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Falha ao carregar os pedidos para o relatório",
			},
		})
		return
	}

	organizationName := "Igreja Evangélica Assembleia de Deus Jerusalém"
	cfg := config.GetConfig()
	if cfg != nil && cfg.OrganizationName != "" {
		organizationName = cfg.OrganizationName
	}

	generatedAt := time.Now()
	pdfBytes, err := services.GenerateOrdersReport(orders, organizationName, generatedAt)
	if err != nil {
		log.Printf("Report generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "REPORT_GENERATION_ERROR",
				"message": "Falha ao gerar o relatório de pedidos",
			},
		})
		return
	}

	filename := services.ReportFilename(generatedAt)

	// Archival is best effort: a missing copy in the bucket should never
	// block the admin's download.
	if archive := services.GetArchiveService(); archive != nil {
		if key, archiveErr := archive.StoreReport(filename, pdfBytes); archiveErr != nil {
			log.Printf("warning: failed to archive report %s: %v", filename, archiveErr)
		} else {
			log.Printf("Report archived as %s", key)
		}
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
