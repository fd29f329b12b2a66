package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/MikeMC777/amcmart-api/internal/httpx"
	"github.com/MikeMC777/amcmart-api/internal/order"
	"github.com/MikeMC777/amcmart-api/internal/promo"
)

// validatePromoHandler godoc
//
//	@Summary		Check a promo code
//	@Description	An unknown, inactive or used code answers 200 with success=false.
//	@Tags			promo
//	@Accept			json
//	@Produce		json
//	@Param			body	body		promo.ValidateRequest	true	"Code"
//	@Success		200		{object}	httpx.Envelope{data=promo.Applied}
//	@Failure		400		{object}	httpx.Envelope
//	@Router			/promo/validate [post]
func validatePromoHandler(checker order.PromoChecker, v *validatorv10.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in promo.ValidateRequest
		if !bindJSON(c, v, &in) {
			return
		}
		applied, err := checker.Validate(c.Request.Context(), in.Code)
		switch {
		case err == nil:
			httpx.OK(c, http.StatusOK, applied)
		case errors.Is(err, promo.ErrInvalidCode):
			c.JSON(http.StatusOK, httpx.Envelope{Success: false, Error: err.Error()})
		case errors.Is(err, promo.ErrEmptyCode):
			httpx.Fail(c, http.StatusBadRequest, "Missing required fields: code")
		default:
			storeError(c, err)
		}
	}
}

// listPromosHandler godoc
//
//	@Summary	List promo codes
//	@Tags		promocodes
//	@Produce	json
//	@Success	200	{object}	httpx.Envelope{data=[]promo.PromoCode}
//	@Router		/promocodes [get]
func listPromosHandler(repo promo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context())
		if err != nil {
			storeError(c, err)
			return
		}
		httpx.List(c, http.StatusOK, items)
	}
}

// getPromoHandler godoc
//
//	@Summary	Get promo code
//	@Tags		promocodes
//	@Produce	json
//	@Param		id	path		int	true	"Promo code ID"
//	@Success	200	{object}	httpx.Envelope{data=promo.PromoCode}
//	@Failure	404	{object}	httpx.Envelope
//	@Router		/promocodes/{id} [get]
func getPromoHandler(repo promo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		p, err := repo.GetByID(c.Request.Context(), id)
		if errors.Is(err, promo.ErrNotFound) {
			httpx.Fail(c, http.StatusNotFound, "Promo code not found")
			return
		}
		if err != nil {
			storeError(c, err)
			return
		}
		httpx.OK(c, http.StatusOK, p)
	}
}

type createdPromo struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// createPromoHandler godoc
//
//	@Summary	Create promo code
//	@Tags		promocodes
//	@Accept		json
//	@Produce	json
//	@Security	AdminAuth
//	@Param		body	body		promo.CreatePromoRequest	true	"Promo code"
//	@Success	201		{object}	httpx.Envelope{data=createdPromo}
//	@Failure	400		{object}	httpx.Envelope
//	@Router		/promocodes [post]
func createPromoHandler(repo promo.Repository, v *validatorv10.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in promo.CreatePromoRequest
		if !bindJSON(c, v, &in) {
			return
		}
		p := &promo.PromoCode{
			Code:     promo.Normalize(in.Code),
			Discount: in.Discount,
			Status:   in.Status,
			Used:     promo.UsedNo,
		}
		if p.Code == "" {
			httpx.Fail(c, http.StatusBadRequest, "Missing required fields: code")
			return
		}
		if p.Status == "" {
			p.Status = promo.Active
		}
		id, err := repo.Create(c.Request.Context(), p)
		if errors.Is(err, promo.ErrAlreadyExist) {
			httpx.Fail(c, http.StatusBadRequest, fmt.Sprintf("Promo code %s already exists", p.Code))
			return
		}
		if err != nil {
			_ = c.Error(err)
			httpx.Fail(c, http.StatusBadRequest, "Could not create promo code")
			return
		}
		httpx.OK(c, http.StatusCreated, createdPromo{
			ID:      id,
			Message: fmt.Sprintf("Promo code %s created successfully!", p.Code),
		})
	}
}

// updatePromoHandler godoc
//
//	@Summary	Update promo code (partial)
//	@Tags		promocodes
//	@Accept		json
//	@Produce	json
//	@Security	AdminAuth
//	@Param		id		path		int							true	"Promo code ID"
//	@Param		body	body		promo.UpdatePromoRequest	true	"Fields to change"
//	@Success	200		{object}	httpx.Envelope
//	@Failure	400		{object}	httpx.Envelope
//	@Failure	404		{object}	httpx.Envelope
//	@Router		/promocodes/{id} [put]
func updatePromoHandler(repo promo.Repository, v *validatorv10.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var in promo.UpdatePromoRequest
		if !bindJSON(c, v, &in) {
			return
		}
		err := repo.Update(c.Request.Context(), id, in)
		switch {
		case err == nil:
			httpx.Message(c, http.StatusOK, fmt.Sprintf("Promo code ID %d updated successfully!", id))
		case errors.Is(err, promo.ErrNotFound):
			httpx.Fail(c, http.StatusNotFound, "Promo code not found")
		case errors.Is(err, promo.ErrAlreadyExist):
			httpx.Fail(c, http.StatusBadRequest, "Promo code already exists")
		default:
			_ = c.Error(err)
			httpx.Fail(c, http.StatusBadRequest, "Could not update promo code")
		}
	}
}

// deletePromoHandler godoc
//
//	@Summary	Delete promo code
//	@Tags		promocodes
//	@Produce	json
//	@Security	AdminAuth
//	@Param		id	path		int	true	"Promo code ID"
//	@Success	200	{object}	httpx.Envelope
//	@Failure	404	{object}	httpx.Envelope
//	@Router		/promocodes/{id} [delete]
func deletePromoHandler(repo promo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		deleted, err := repo.Delete(c.Request.Context(), id)
		if err != nil {
			storeError(c, err)
			return
		}
		if !deleted {
			httpx.Fail(c, http.StatusNotFound, "Promo code not found")
			return
		}
		httpx.Message(c, http.StatusOK, fmt.Sprintf("Promo code ID %d deleted successfully!", id))
	}
}
