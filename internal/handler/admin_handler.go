package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"readingtimer/internal/middleware"
	"readingtimer/internal/service"
)

type AdminHandler struct {
	adminService *service.AdminService
}

type loginRequest struct {
	Password string `json:"password"`
}

func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Login checks the shared admin password and, on success, sets the session
// cookie. The token is also returned in the body for Bearer clients.
func (h *AdminHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "invalid_json", "message": "invalid request body"},
		})
		return
	}

	token, apiErr := h.adminService.Login(req.Password)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}

	c.SetCookie(middleware.AdminCookie, token, int(h.adminService.TokenTTL().Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token})
}

// Logout clears the session cookie. Safe to call repeatedly.
func (h *AdminHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.AdminCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me reports whether the request carries a valid admin credential.
func (h *AdminHandler) Me(c *gin.Context) {
	token := middleware.Token(c)
	authed := token != "" && h.adminService.ParseToken(token) == nil
	c.JSON(http.StatusOK, gin.H{"authed": authed})
}
