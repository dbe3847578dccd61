package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-karte/internal/domain/karte"
	"github.com/BruksfildServices01/salon-karte/internal/httpresp"
	"github.com/BruksfildServices01/salon-karte/internal/middleware"
	ucClient "github.com/BruksfildServices01/salon-karte/internal/usecase/client"
)

type ClientHandler struct {
	clients karte.ClientRepository
	create  *ucClient.CreateClient
	update  *ucClient.UpdateClient
}

func NewClientHandler(
	clients karte.ClientRepository,
	create *ucClient.CreateClient,
	update *ucClient.UpdateClient,
) *ClientHandler {
	return &ClientHandler{
		clients: clients,
		create:  create,
		update:  update,
	}
}

type ClientRequest struct {
	Name           string `json:"name"`
	Contact        string `json:"contact"`
	Notes          string `json:"notes"`
	PrimaryStaffID string `json:"primary_staff_id"`
}

func (r ClientRequest) input(actorID string) ucClient.ClientInput {
	return ucClient.ClientInput{
		ActorID:        actorID,
		Name:           r.Name,
		Contact:        r.Contact,
		Notes:          r.Notes,
		PrimaryStaffID: r.PrimaryStaffID,
	}
}

// ======================================================
// LIST CLIENTS
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))

	clients, err := h.clients.ListClients(c.Request.Context(), query)
	if err != nil {
		writeError(c, err, "failed_to_list_clients")
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// CREATE / UPDATE
// ======================================================
func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	client, err := h.create.Execute(c.Request.Context(), req.input(middleware.UserID(c)))
	if err != nil {
		writeError(c, err, "failed_to_create_client")
		return
	}

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	client, err := h.update.Execute(c.Request.Context(), c.Param("id"), req.input(middleware.UserID(c)))
	if err != nil {
		writeError(c, err, "failed_to_update_client")
		return
	}

	httpresp.OK(c, client)
}

// Names lists every client by name for the pickers of the visit and
// measurement forms.
func (h *ClientHandler) Names(c *gin.Context) {
	clients, err := h.clients.ListClientNames(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_list_clients")
		return
	}

	type option struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	out := make([]option, 0, len(clients))
	for _, cl := range clients {
		out = append(out, option{ID: cl.ID, Name: cl.Name})
	}
	httpresp.List(c, out)
}
