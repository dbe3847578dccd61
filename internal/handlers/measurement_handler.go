package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-karte/internal/dto"
	"github.com/BruksfildServices01/salon-karte/internal/export"
	"github.com/BruksfildServices01/salon-karte/internal/middleware"
	"github.com/BruksfildServices01/salon-karte/internal/timezone"
	ucMeasurement "github.com/BruksfildServices01/salon-karte/internal/usecase/measurement"
)

type MeasurementHandler struct {
	list   *ucMeasurement.ListMeasurements
	create *ucMeasurement.CreateMeasurement
	loc    *time.Location
}

func NewMeasurementHandler(
	list *ucMeasurement.ListMeasurements,
	create *ucMeasurement.CreateMeasurement,
	loc *time.Location,
) *MeasurementHandler {
	return &MeasurementHandler{
		list:   list,
		create: create,
		loc:    loc,
	}
}

type MeasurementRequest struct {
	ClientID   string   `json:"client_id" binding:"required"`
	Value      *float64 `json:"value" binding:"required"`
	MeasuredAt string   `json:"measured_at" binding:"required"`
}

func (h *MeasurementHandler) selection(c *gin.Context) (*ucMeasurement.ListMeasurementsOutput, bool) {
	out, err := h.list.Execute(c.Request.Context(), ucMeasurement.ListMeasurementsInput{
		ClientID: c.Query("client_id"),
		From:     c.Query("from"),
		To:       c.Query("to"),
	})
	if err != nil {
		writeError(c, err, "failed_to_list_measurements")
		return nil, false
	}
	return out, true
}

// List answers the chart data of one client between from and to.
func (h *MeasurementHandler) List(c *gin.Context) {
	out, ok := h.selection(c)
	if !ok {
		return
	}

	chart := dto.MeasurementChartDTO{
		ClientID: c.Query("client_id"),
		From:     out.From.In(h.loc).Format(timezone.DateLayout),
		To:       out.To.In(h.loc).Format(timezone.DateLayout),
		Points:   make([]dto.MeasurementPointDTO, 0, len(out.Measurements)),
	}
	for _, m := range out.Measurements {
		chart.Points = append(chart.Points, dto.MeasurementPointDTO{
			ID:         m.ID,
			Date:       m.MeasuredAt.In(h.loc).Format(timezone.DateLayout),
			Value:      m.Value,
			MeasuredAt: m.MeasuredAt,
		})
	}

	c.JSON(http.StatusOK, chart)
}

func (h *MeasurementHandler) Create(c *gin.Context) {
	var req MeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	m, err := h.create.Execute(c.Request.Context(), ucMeasurement.CreateMeasurementInput{
		ActorID:  middleware.UserID(c),
		ClientID: req.ClientID,
		Value:    *req.Value,
		Date:     req.MeasuredAt,
	})
	if err != nil {
		writeError(c, err, "failed_to_create_measurement")
		return
	}

	c.JSON(http.StatusCreated, m)
}

// Export sends the same selection as List as an xlsx workbook.
func (h *MeasurementHandler) Export(c *gin.Context) {
	out, ok := h.selection(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteMeasurements(&buf, out.Measurements, h.loc); err != nil {
		writeError(c, err, "failed_to_export_measurements")
		return
	}

	filename := fmt.Sprintf("measurements_%s_%s.xlsx",
		out.From.In(h.loc).Format("20060102"),
		out.To.In(h.loc).Format("20060102"),
	)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, export.XLSXContentType, buf.Bytes())
}
