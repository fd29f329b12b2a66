package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/MikeMC777/amcmart-api/internal/httpx"
	"github.com/MikeMC777/amcmart-api/internal/order"
	"github.com/MikeMC777/amcmart-api/internal/promo"
)

// createOrderHandler godoc
//
//	@Summary		Place an order
//	@Description	201 when the order is stored before responding, 202 when it was queued.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			body	body		order.CreateOrderRequest	true	"Order"
//	@Success		201		{object}	httpx.Envelope{data=order.Receipt}
//	@Success		202		{object}	httpx.Envelope{data=order.Receipt}
//	@Failure		400		{object}	httpx.Envelope
//	@Failure		409		{object}	httpx.Envelope
//	@Failure		503		{object}	httpx.Envelope
//	@Router			/orders [post]
func createOrderHandler(intake Intake) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.CreateOrderRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
			return
		}

		rc, err := intake.Submit(c.Request.Context(), in)
		var ve *order.ValidationError
		switch {
		case err == nil:
		case errors.As(err, &ve):
			httpx.Fail(c, http.StatusBadRequest, ve.Error())
			return
		case errors.Is(err, promo.ErrInvalidCode):
			httpx.Fail(c, http.StatusBadRequest, err.Error())
			return
		case errors.Is(err, order.ErrPromoUnavailable):
			httpx.Fail(c, http.StatusConflict, "Promo code has already been used")
			return
		case errors.Is(err, order.ErrQueueFull), errors.Is(err, order.ErrPipelineClosed):
			_ = c.Error(err)
			httpx.Fail(c, http.StatusServiceUnavailable, "Order intake is unavailable, please retry")
			return
		default:
			storeError(c, err)
			return
		}

		status := http.StatusAccepted
		if rc.Persisted {
			status = http.StatusCreated
		}
		httpx.OK(c, status, rc)
	}
}

// listOrdersHandler godoc
//
//	@Summary	List orders, newest first
//	@Tags		orders
//	@Produce	json
//	@Param		status	query		string	false	"Filter by status"
//	@Param		limit	query		int		false	"Page size (max 500)"
//	@Param		offset	query		int		false	"Offset"
//	@Success	200		{object}	httpx.Envelope{data=[]order.Order}
//	@Failure	400		{object}	httpx.Envelope
//	@Router		/orders [get]
func listOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := order.Status(strings.ToLower(strings.TrimSpace(c.Query("status"))))
		if status != "" && !status.Valid() {
			httpx.Fail(c, http.StatusBadRequest, "Invalid status filter")
			return
		}
		items, err := repo.List(c.Request.Context(), order.Query{
			Status: status,
			Limit:  queryInt(c, "limit", 100),
			Offset: queryInt(c, "offset", 0),
		})
		if err != nil {
			storeError(c, err)
			return
		}
		httpx.List(c, http.StatusOK, items)
	}
}

// getOrderHandler godoc
//
//	@Summary	Get order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"Order ID"
//	@Success	200	{object}	httpx.Envelope{data=order.Order}
//	@Failure	404	{object}	httpx.Envelope
//	@Router		/orders/{id} [get]
func getOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.ToUpper(strings.TrimSpace(c.Param("id")))
		if !order.ValidID(id) {
			httpx.Fail(c, http.StatusNotFound, "Order not found")
			return
		}
		o, err := repo.GetByID(c.Request.Context(), id)
		if errors.Is(err, order.ErrNotFound) {
			httpx.Fail(c, http.StatusNotFound, "Order not found")
			return
		}
		if err != nil {
			storeError(c, err)
			return
		}
		httpx.OK(c, http.StatusOK, o)
	}
}

// updateOrderStatusHandler godoc
//
//	@Summary	Change order status
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Security	AdminAuth
//	@Param		id		path		string						true	"Order ID"
//	@Param		body	body		order.UpdateStatusRequest	true	"New status"
//	@Success	200		{object}	httpx.Envelope
//	@Failure	400		{object}	httpx.Envelope
//	@Failure	404		{object}	httpx.Envelope
//	@Router		/orders/{id}/status [put]
func updateOrderStatusHandler(repo order.Repository, v *validatorv10.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.ToUpper(strings.TrimSpace(c.Param("id")))
		var in order.UpdateStatusRequest
		if !bindJSON(c, v, &in) {
			return
		}
		err := repo.UpdateStatus(c.Request.Context(), id, in.Status)
		if errors.Is(err, order.ErrNotFound) {
			httpx.Fail(c, http.StatusNotFound, "Order not found")
			return
		}
		if err != nil {
			storeError(c, err)
			return
		}
		httpx.Message(c, http.StatusOK, fmt.Sprintf("Order %s status updated to %s", id, in.Status))
	}
}
