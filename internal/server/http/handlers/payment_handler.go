package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apextheme/apexstore/internal/domain/model"
	"github.com/apextheme/apexstore/internal/server/http/dto"
)

// PaymentHandler exposes the payment channel catalog for checkout.
type PaymentHandler struct {
	channels []model.PaymentChannel
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(channels []model.PaymentChannel) *PaymentHandler {
	return &PaymentHandler{channels: channels}
}

// List handles GET /api/payment-methods.
func (h *PaymentHandler) List(c *gin.Context) {
	response := make([]dto.PaymentChannelResponse, 0, len(h.channels))
	for _, ch := range h.channels {
		response = append(response, dto.PaymentChannelResponse{
			Method:       string(ch.Method),
			Label:        ch.Label,
			Number:       ch.Number,
			Instructions: ch.Instructions,
		})
	}
	c.JSON(http.StatusOK, response)
}
