package httpserver

import (
	"fmt"
	"net/http"

	"yoga-marketplace/internal/domain"
	classsvc "yoga-marketplace/internal/service/class"

	"github.com/gin-gonic/gin"
)

func createClassHandler(svc ClassService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in classsvc.CreateInput
		if !bindJSON(c, &in) {
			return
		}
		res, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func approvedClassesHandler(svc ClassService) gin.HandlerFunc {
	return func(c *gin.Context) {
		classes, err := svc.ListApproved(c.Request.Context())
		writeClasses(c, classes, err)
	}
}

func instructorClassesHandler(svc ClassService) gin.HandlerFunc {
	return func(c *gin.Context) {
		classes, err := svc.ListByInstructor(c.Request.Context(), c.Param("email"))
		writeClasses(c, classes, err)
	}
}

func allClassesHandler(svc ClassService) gin.HandlerFunc {
	return func(c *gin.Context) {
		classes, err := svc.ListAll(c.Request.Context())
		writeClasses(c, classes, err)
	}
}

func getClassHandler(svc ClassService) gin.HandlerFunc {
	return func(c *gin.Context) {
		class, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, class)
	}
}

func changeStatusHandler(svc ClassService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in classsvc.StatusInput
		if !bindJSON(c, &in) {
			return
		}
		res, err := svc.ChangeStatus(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func updateClassHandler(svc ClassService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in classsvc.DetailsInput
		if !bindJSON(c, &in) {
			return
		}
		res, err := svc.UpdateDetails(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func writeClasses(c *gin.Context, classes []domain.Class, err error) {
	if err != nil {
		_ = c.Error(err)
		return
	}
	if classes == nil {
		classes = []domain.Class{}
	}
	c.JSON(http.StatusOK, classes)
}

// bindJSON decodes the request body into dst. Decode failures are recorded as validation errors.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		_ = c.Error(fmt.Errorf("%w: invalid JSON body: %v", domain.ErrValidation, err))
		return false
	}
	return true
}
