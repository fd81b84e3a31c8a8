package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/deblinanandy/stockmanagement/internal/catalog"
)

// APIResponse is the envelope for every handler reply.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

var validate = validator.New()

// bindAndValidate decodes the JSON body into req and runs struct
// validation. On failure it writes the 400 response and returns false.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: "Invalid input: " + err.Error()})
		return false
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: "Invalid input: field '" + verrs[0].Field() + "' failed on '" + verrs[0].Tag() + "'"})
		} else {
			c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: "Invalid input: " + err.Error()})
		}
		return false
	}
	return true
}

func respondOK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Message: message, Data: data})
}

func respondCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Message: message, Data: data})
}

// respondError maps a catalog failure kind onto an HTTP status. Store
// failures hide their detail behind a generic message; everything else
// carries its own.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, APIResponse{Success: false, Message: err.Error()})
	case errors.Is(err, catalog.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: err.Error()})
	case errors.Is(err, catalog.ErrDuplicate):
		c.JSON(http.StatusConflict, APIResponse{Success: false, Message: err.Error()})
	default:
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("Store failure")
		c.JSON(http.StatusInternalServerError, APIResponse{Success: false, Message: "Internal server error"})
	}
}
