package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-karte/internal/domain/karte"
	"github.com/BruksfildServices01/salon-karte/internal/httpresp"
)

type StaffHandler struct {
	users karte.UserRepository
}

func NewStaffHandler(users karte.UserRepository) *StaffHandler {
	return &StaffHandler{users: users}
}

// List returns active users ordered by name, for the staff picker.
func (h *StaffHandler) List(c *gin.Context) {
	staff, err := h.users.ListActiveStaff(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_list_staff")
		return
	}
	httpresp.List(c, staff)
}
