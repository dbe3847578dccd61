package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-karte/internal/domain/karte"
	"github.com/BruksfildServices01/salon-karte/internal/timezone"
)

// maxAuditPage bounds page so the offset cannot overflow.
const maxAuditPage = 1_000_000

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs karte.AuditLogRepository
	loc  *time.Location
}

func NewAuditLogsHandler(logs karte.AuditLogRepository, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, loc: loc}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "50")

	page, _ := strconv.Atoi(pageStr)
	if page <= 0 {
		page = 1
	}
	if page > maxAuditPage {
		page = maxAuditPage
	}

	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	// --------------------------------------------------
	// Optional filters; unreadable dates are ignored
	// --------------------------------------------------

	f := karte.AuditLogFilter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Offset: (page - 1) * limit,
		Limit:  limit,
	}

	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := timezone.ParseDate(fromStr, h.loc); err == nil {
			f.From = from
		}
	}

	if toStr := c.Query("to"); toStr != "" {
		if to, err := timezone.ParseDate(toStr, h.loc); err == nil {
			f.To = timezone.EndOfDay(to)
		}
	}

	logs, total, err := h.logs.ListAuditLogs(c.Request.Context(), f)
	if err != nil {
		writeError(c, err, "audit_list_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
