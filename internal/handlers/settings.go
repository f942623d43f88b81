package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	srvErrors "github.com/kantanpro/kantanpro/pkg/errors"
)

type settingRequest struct {
	Value any `json:"value"`
}

type settingResponse struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// GetSettings (GET /settings)
func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.bridge.GetSettings(c.Request.Context())
	if err != nil {
		h.writeError(c, "load settings", err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// SaveSettings (PUT /settings) stores every key of the body in one
// transaction.
func (h *Handler) SaveSettings(c *gin.Context) {
	var settings map[string]any
	if err := c.ShouldBindJSON(&settings); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.bridge.SaveSettings(c.Request.Context(), settings); err != nil {
		h.writeError(c, "save settings", err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// GetSetting (GET /settings/:key)
func (h *Handler) GetSetting(c *gin.Context) {
	key := c.Param("key")
	value, found, err := h.bridge.GetSetting(c.Request.Context(), key)
	if err != nil {
		h.writeError(c, "load setting", err)
		return
	}
	if !found {
		h.writeError(c, "load setting", srvErrors.NewResourceNotFoundError("setting", key))
		return
	}
	c.JSON(http.StatusOK, settingResponse{Key: key, Value: value})
}

// SetSetting (PUT /settings/:key)
func (h *Handler) SetSetting(c *gin.Context) {
	key := c.Param("key")
	var req settingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.bridge.SetSetting(c.Request.Context(), key, req.Value); err != nil {
		h.writeError(c, "save setting", err)
		return
	}
	c.JSON(http.StatusOK, settingResponse{Key: key, Value: req.Value})
}

// DeleteSetting (DELETE /settings/:key)
func (h *Handler) DeleteSetting(c *gin.Context) {
	key := c.Param("key")
	res, err := h.bridge.DeleteSetting(c.Request.Context(), key)
	if err != nil {
		h.writeError(c, "delete setting", err)
		return
	}
	if res.Changes == 0 {
		h.writeError(c, "delete setting", srvErrors.NewResourceNotFoundError("setting", key))
		return
	}
	c.JSON(http.StatusOK, res)
}
