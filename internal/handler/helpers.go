package handler

import (
	"io"
	"net/http"
	"reflect"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jmpanasiti/rda-platform-api/internal/apierror"
	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/service"
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

	// Usernames: at least 8 chars, no spaces, must not start with a digit.
	_ = validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) < 8 {
			return false
		}
		runes := []rune(s)
		if unicode.IsDigit(runes[0]) {
			return false
		}
		for _, r := range runes {
			if unicode.IsSpace(r) {
				return false
			}
		}
		return true
	})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	return runValidation(c, req)
}

// bindQueryAndValidate is the query-string counterpart of bindAndValidate.
func bindQueryAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid query params: "+err.Error()))
		return false
	}
	return runValidation(c, req)
}

func runValidation(c *gin.Context, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// pageParams reads limit/offset, writing the error response on bad input.
func pageParams(c *gin.Context) (limit, offset int, ok bool) {
	var q dto.PageQuery
	if !bindQueryAndValidate(c, &q) {
		return 0, 0, false
	}
	return q.Limit, q.Offset, true
}

// pathID parses a UUID path param, writing a 400 on failure.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid "+name+"."))
		return uuid.Nil, false
	}
	return id, true
}

// formFile reads the uploaded "file" part fully into memory.
func formFile(c *gin.Context) (name, contentType string, data []byte, ok bool) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Missing file."))
		return "", "", nil, false
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Could not read file."))
		return "", "", nil, false
	}
	defer f.Close()
	data, err = io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Could not read file."))
		return "", "", nil, false
	}
	return fh.Filename, fh.Header.Get("Content-Type"), data, true
}

// respondErr translates service errors into the HTTP envelope. Anything not
// tagged by the service layer is a 500 and its detail stays out of the body.
func respondErr(c *gin.Context, err error) {
	switch service.KindOf(err) {
	case service.KindBadRequest:
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	case service.KindUnauthorized:
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
	case service.KindForbidden:
		c.JSON(http.StatusForbidden, apierror.New(err.Error()))
	case service.KindNotFound:
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled service error")
		c.JSON(http.StatusInternalServerError, apierror.New("Internal server error"))
	}
}
