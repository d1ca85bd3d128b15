package httpserver

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"yoga-marketplace/internal/domain"
	cartsvc "yoga-marketplace/internal/service/cart"

	"github.com/gin-gonic/gin"
)

type cartItemQuery struct {
	Email string `json:"email"`
}

func addToCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cartsvc.AddInput
		if !bindJSON(c, &in) {
			return
		}
		res, err := svc.AddItem(c.Request.Context(), in)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// cartItemHandler reads the user from a JSON body on the GET, falling back to ?email=.
func cartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q cartItemQuery
		if err := c.ShouldBindJSON(&q); err != nil && !errors.Is(err, io.EOF) {
			_ = c.Error(fmt.Errorf("%w: invalid JSON body: %v", domain.ErrValidation, err))
			return
		}
		email := strings.TrimSpace(q.Email)
		if email == "" {
			email = strings.TrimSpace(c.Query("email"))
		}
		entry, err := svc.GetItem(c.Request.Context(), c.Param("id"), email)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, entry)
	}
}

func cartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		classes, err := svc.ListForUser(c.Request.Context(), c.Param("email"))
		writeClasses(c, classes, err)
	}
}

func deleteCartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.RemoveItem(c.Request.Context(), c.Param("id"), c.Query("email"))
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
