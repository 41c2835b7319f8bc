package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/apextheme/apexstore/internal/domain/errors"
	"github.com/apextheme/apexstore/internal/domain/model"
	"github.com/apextheme/apexstore/internal/server/http/dto"
	"github.com/apextheme/apexstore/internal/usecase"
)

// OrderHandler manages order intake and admin review endpoints.
type OrderHandler struct {
	facade StoreFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade StoreFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders (multipart checkout submission).
func (h *OrderHandler) Create(c *gin.Context) {
	req := usecase.IntakeRequest{
		Name:          c.PostForm("name"),
		Email:         c.PostForm("email"),
		Phone:         c.PostForm("phone"),
		BusinessName:  c.PostForm("businessName"),
		PaymentMethod: c.PostForm("paymentMethod"),
	}

	if file, err := c.FormFile("screenshot"); err == nil {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unreadable screenshot"})
			return
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unreadable screenshot"})
			return
		}
		req.Screenshot = &usecase.ScreenshotUpload{
			Filename:    file.Filename,
			ContentType: file.Header.Get("Content-Type"),
			Data:        data,
		}
	}

	order, err := h.facade.Intake(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrMissingField),
			errors.Is(err, domainErrors.ErrInvalidEmail),
			errors.Is(err, domainErrors.ErrInvalidPaymentMethod):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to create order"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.IntakeResponse{
		Success: true,
		Message: "Order created successfully",
		OrderID: order.ID,
	})
}

// List handles GET /api/orders (admin).
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to fetch orders"})
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, dto.ListOrdersResponse{Orders: response})
}

// Review handles POST /api/orders/approve (admin).
func (h *OrderHandler) Review(c *gin.Context) {
	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderID == "" || req.Action == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing orderId or action"})
		return
	}

	result, err := h.facade.Review(c.Request.Context(), req.OrderID, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "order not found"})
		case errors.Is(err, domainErrors.ErrInvalidAction):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to review order"})
		}
		return
	}

	resp := dto.ReviewResponse{Success: true}
	if result.Status == model.OrderStatusApproved {
		resp.Message = "Order approved and email sent"
		resp.DownloadURL = result.DownloadURL
	} else {
		resp.Message = "Order rejected"
	}
	c.JSON(http.StatusOK, resp)
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:                 order.ID,
		Email:              order.Email,
		Name:               order.Name,
		Phone:              order.Phone,
		BusinessName:       order.BusinessName,
		PaymentMethod:      string(order.PaymentMethod),
		ScreenshotURL:      order.ScreenshotURL,
		Status:             string(order.Status),
		DownloadCount:      order.DownloadCount,
		MaxDownloads:       order.MaxDownloads,
		DownloadToken:      order.DownloadToken,
		DownloadExpiresAt:  order.DownloadExpiresAt,
		WatermarkedFileURL: order.WatermarkedFileURL,
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
		ApprovedAt:         order.ApprovedAt,
	}
}
