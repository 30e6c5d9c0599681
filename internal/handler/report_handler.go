package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hunyar/focusflow-api/internal/service"
	"github.com/hunyar/focusflow-api/pkg/response"
)

// ReportHandler streams marks reports.
type ReportHandler struct {
	service *service.ReportService
}

// NewReportHandler constructs a report handler.
func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{service: svc}
}

// MarksReport godoc
// @Summary Download the marks summary as CSV or PDF
// @Tags Marks
// @Produce octet-stream
// @Param format query string false "csv or pdf" default(csv)
// @Success 200
// @Router /marks/report [get]
func (h *ReportHandler) MarksReport(c *gin.Context) {
	format := c.DefaultQuery("format", service.ReportFormatCSV)
	report, err := h.service.MarksReport(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename))
	c.Data(http.StatusOK, report.ContentType, report.Content)
}
