package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/apextheme/apexstore/internal/domain/errors"
	"github.com/apextheme/apexstore/internal/usecase"
)

// DownloadHandler serves the token-gated download endpoint.
type DownloadHandler struct {
	facade DownloadFacade
}

// NewDownloadHandler constructs DownloadHandler.
func NewDownloadHandler(facade DownloadFacade) *DownloadHandler {
	return &DownloadHandler{facade: facade}
}

// Redeem handles GET /api/download?token=...
func (h *DownloadHandler) Redeem(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.String(http.StatusBadRequest, "Missing download token")
		return
	}

	fileURL, err := h.facade.RedeemDownload(c.Request.Context(), token)
	if err != nil {
		var limitErr usecase.LimitReachedError
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(invalidLinkPage))
		case errors.Is(err, domainErrors.ErrLinkExpired):
			c.Data(http.StatusGone, "text/html; charset=utf-8", []byte(expiredLinkPage))
		case errors.As(err, &limitErr):
			c.Data(http.StatusForbidden, "text/html; charset=utf-8", []byte(limitReachedPage(limitErr.Limit)))
		case errors.Is(err, domainErrors.ErrFileMissing):
			c.String(http.StatusNotFound, "Theme file not found")
		default:
			c.String(http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, fileURL)
}
