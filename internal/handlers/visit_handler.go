package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-karte/internal/domain/karte"
	"github.com/BruksfildServices01/salon-karte/internal/httpresp"
	"github.com/BruksfildServices01/salon-karte/internal/middleware"
	ucVisit "github.com/BruksfildServices01/salon-karte/internal/usecase/visit"
)

type VisitHandler struct {
	visits karte.VisitRepository
	create *ucVisit.CreateVisit
	update *ucVisit.UpdateVisit
}

func NewVisitHandler(
	visits karte.VisitRepository,
	create *ucVisit.CreateVisit,
	update *ucVisit.UpdateVisit,
) *VisitHandler {
	return &VisitHandler{
		visits: visits,
		create: create,
		update: update,
	}
}

type VisitRequest struct {
	ClientID    string `json:"client_id"`
	VisitDate   string `json:"visit_date"`
	ServiceMenu string `json:"service_menu"`
	Notes       string `json:"notes"`
}

func (r VisitRequest) input(actorID string) ucVisit.VisitInput {
	return ucVisit.VisitInput{
		ActorID:     actorID,
		ClientID:    r.ClientID,
		VisitDate:   r.VisitDate,
		ServiceMenu: r.ServiceMenu,
		Notes:       r.Notes,
	}
}

func (h *VisitHandler) List(c *gin.Context) {
	visits, err := h.visits.ListVisits(c.Request.Context(), karte.VisitFilter{
		ClientID: strings.TrimSpace(c.Query("client_id")),
		Search:   strings.TrimSpace(c.Query("query")),
	})
	if err != nil {
		writeError(c, err, "failed_to_list_visits")
		return
	}

	httpresp.List(c, visits)
}

func (h *VisitHandler) Create(c *gin.Context) {
	var req VisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	visit, err := h.create.Execute(c.Request.Context(), req.input(middleware.UserID(c)))
	if err != nil {
		writeError(c, err, "failed_to_create_visit")
		return
	}

	c.JSON(http.StatusCreated, visit)
}

func (h *VisitHandler) Update(c *gin.Context) {
	var req VisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	id := c.Param("id")
	if err := h.update.Execute(c.Request.Context(), id, req.input(middleware.UserID(c))); err != nil {
		writeError(c, err, "failed_to_update_visit")
		return
	}

	httpresp.OK(c, gin.H{"id": id, "status": "updated"})
}

// ServiceMenus returns the fixed treatment options in display order.
func (h *VisitHandler) ServiceMenus(c *gin.Context) {
	httpresp.List(c, karte.ServiceMenus)
}
