package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/PedroABernis/InventoryManager/internal/apierror"
	"github.com/PedroABernis/InventoryManager/internal/apperr"
	"github.com/PedroABernis/InventoryManager/internal/store"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation("", fields))
		return false
	}
	return true
}

// respondError maps domain errors onto HTTP status codes. Validation failures
// become 422, unknown references 404, storage faults 500. Anything else is
// treated as internal and never exposed verbatim to the client.
func respondError(c *gin.Context, err error) {
	var verr *apperr.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(verr.Msg, verr.Fields))
		return
	}
	var nerr *apperr.NotFoundError
	if errors.As(err, &nerr) {
		c.JSON(http.StatusNotFound, apierror.New(nerr.Error()))
		return
	}
	var serr *store.StorageError
	if errors.As(err, &serr) {
		log.Error().Str("key", serr.Key).Err(serr.Err).Msg("storage failure")
		c.JSON(http.StatusInternalServerError, apierror.New("storage failure"))
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, apierror.New("internal server error"))
}

// parseID parses the :id path parameter, writing a 400 on malformed input.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return uuid.Nil, false
	}
	return id, true
}
