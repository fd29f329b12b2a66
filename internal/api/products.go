package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/MikeMC777/amcmart-api/internal/httpx"
	"github.com/MikeMC777/amcmart-api/internal/product"
)

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.Fail(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, key string, def int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return n
}

// listProductsHandler godoc
//
//	@Summary	List products
//	@Tags		products
//	@Produce	json
//	@Param		category	query		string	false	"Filter by category"
//	@Param		q			query		string	false	"Search in name"
//	@Param		limit		query		int		false	"Page size (max 500)"
//	@Param		offset		query		int		false	"Offset"
//	@Success	200			{object}	httpx.Envelope{data=[]product.Product}
//	@Router		/products [get]
func listProductsHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context(), product.Query{
			Q:        strings.TrimSpace(c.Query("q")),
			Category: strings.TrimSpace(c.Query("category")),
			Limit:    queryInt(c, "limit", 100),
			Offset:   queryInt(c, "offset", 0),
		})
		if err != nil {
			storeError(c, err)
			return
		}
		httpx.List(c, http.StatusOK, items)
	}
}

// getProductHandler godoc
//
//	@Summary	Get product
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"Product ID"
//	@Success	200	{object}	httpx.Envelope{data=product.Product}
//	@Failure	404	{object}	httpx.Envelope
//	@Router		/products/{id} [get]
func getProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		p, err := repo.GetByID(c.Request.Context(), id)
		if errors.Is(err, product.ErrNotFound) {
			httpx.Fail(c, http.StatusNotFound, "Product not found")
			return
		}
		if err != nil {
			storeError(c, err)
			return
		}
		httpx.OK(c, http.StatusOK, p)
	}
}

type createdProduct struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// createProductHandler godoc
//
//	@Summary	Create product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Security	AdminAuth
//	@Param		body	body		product.CreateProductRequest	true	"Product"
//	@Success	201		{object}	httpx.Envelope{data=createdProduct}
//	@Failure	400		{object}	httpx.Envelope
//	@Router		/products [post]
func createProductHandler(repo product.Repository, v *validatorv10.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in product.CreateProductRequest
		if !bindJSON(c, v, &in) {
			return
		}
		image := strings.TrimSpace(in.Image)
		if image == "" {
			image = product.DefaultImage
		}
		p := &product.Product{
			Name:        strings.TrimSpace(in.Name),
			Category:    strings.TrimSpace(in.Category),
			PricePerKg:  in.PricePerKg,
			PriceHalfKg: in.PriceHalfKg,
			StockStatus: in.StockStatus,
			Image:       &image,
		}
		id, err := repo.Create(c.Request.Context(), p)
		if err != nil {
			_ = c.Error(err)
			httpx.Fail(c, http.StatusBadRequest, "Could not create product")
			return
		}
		httpx.OK(c, http.StatusCreated, createdProduct{
			ID:      id,
			Message: fmt.Sprintf("Product %s created successfully!", p.Name),
		})
	}
}

// updateProductHandler godoc
//
//	@Summary	Update product (partial)
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Security	AdminAuth
//	@Param		id		path		int								true	"Product ID"
//	@Param		body	body		product.UpdateProductRequest	true	"Fields to change"
//	@Success	200		{object}	httpx.Envelope
//	@Failure	400		{object}	httpx.Envelope
//	@Failure	404		{object}	httpx.Envelope
//	@Router		/products/{id} [put]
func updateProductHandler(repo product.Repository, v *validatorv10.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var in product.UpdateProductRequest
		if !bindJSON(c, v, &in) {
			return
		}
		if in.Empty() {
			httpx.Fail(c, http.StatusBadRequest, "No fields to update")
			return
		}
		err := repo.Update(c.Request.Context(), id, in)
		if errors.Is(err, product.ErrNotFound) {
			httpx.Fail(c, http.StatusNotFound, "Product not found")
			return
		}
		if err != nil {
			_ = c.Error(err)
			httpx.Fail(c, http.StatusBadRequest, "Could not update product")
			return
		}
		httpx.Message(c, http.StatusOK, fmt.Sprintf("Product ID %d updated successfully!", id))
	}
}

// deleteProductHandler godoc
//
//	@Summary	Delete product
//	@Tags		products
//	@Produce	json
//	@Security	AdminAuth
//	@Param		id	path		int	true	"Product ID"
//	@Success	200	{object}	httpx.Envelope
//	@Failure	404	{object}	httpx.Envelope
//	@Router		/products/{id} [delete]
func deleteProductHandler(repo product.Repository) gin.HandlerFunc {
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
			httpx.Fail(c, http.StatusNotFound, "Product not found")
			return
		}
		httpx.Message(c, http.StatusOK, fmt.Sprintf("Product ID %d deleted successfully!", id))
	}
}
