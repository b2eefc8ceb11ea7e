package helper

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"unicode"

	"community-api/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	entranslations "gopkg.in/go-playground/validator.v9/translations/en"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// HTTPHelper renders every response in the API envelope:
// {status:true, content:{meta, data}} on success and
// {status:false, errors:[{param, message, code}]} on failure.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewHTTPHelper() *HTTPHelper {
	locale := en.New()
	uni := ut.New(locale, locale)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	entranslations.RegisterDefaultTranslations(validate, translator)

	return &HTTPHelper{
		Validate:   validate,
		Translator: translator,
	}
}

// ValidateRequest validates the bound request body and, on failure, sends
// the field errors and returns false.
func (u *HTTPHelper) ValidateRequest(c *gin.Context, req interface{}) bool {
	err := u.Validate.Struct(req)
	if err == nil {
		return true
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		u.SendValidationError(c, validationErrors)
	} else {
		u.SendErrors(c, http.StatusBadRequest, []models.APIError{{
			Message: err.Error(),
			Code:    models.CodeInvalidInput,
		}})
	}
	return false
}

// SendValidationError renders validator errors as INVALID_INPUT entries,
// one per offending field.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	translations := validationErrors.Translate(u.Translator)

	apiErrors := make([]models.APIError, 0, len(validationErrors))
	for _, err := range validationErrors {
		apiErrors = append(apiErrors, models.APIError{
			Param:   Underscore(err.Field()),
			Message: translations[err.Namespace()],
			Code:    models.CodeInvalidInput,
		})
	}

	u.SendErrors(c, http.StatusBadRequest, apiErrors)
}

// SendServiceError maps a service-level error to its HTTP status and wire
// code. Unknown errors surface as a generic 500 without internal detail.
func (u *HTTPHelper) SendServiceError(c *gin.Context, err error) {
	switch e := err.(type) {
	case models.ErrorUnauthorized:
		u.SendUnauthorized(c)
	case models.ErrorNotFound:
		u.SendErrors(c, http.StatusBadRequest, []models.APIError{{
			Param:   e.Param,
			Message: e.Message,
			Code:    models.CodeResourceNotFound,
		}})
	case models.ErrorConflict:
		u.SendErrors(c, http.StatusBadRequest, []models.APIError{{
			Param:   e.Param,
			Message: e.Message,
			Code:    models.CodeResourceExists,
		}})
	case models.ErrorForbidden:
		u.SendErrors(c, http.StatusBadRequest, []models.APIError{{
			Message: e.Message,
			Code:    models.CodeNotAllowedAccess,
		}})
	case models.ErrorValidation:
		u.SendErrors(c, http.StatusBadRequest, e.Errors)
	default:
		u.SendErrors(c, http.StatusInternalServerError, []models.APIError{{
			Message: "Some internal server error occured.",
		}})
	}
}

func (u *HTTPHelper) SendBadRequest(c *gin.Context, param, message, code string) {
	u.SendErrors(c, http.StatusBadRequest, []models.APIError{{
		Param:   param,
		Message: message,
		Code:    code,
	}})
}

func (u *HTTPHelper) SendUnauthorized(c *gin.Context) {
	u.SendErrors(c, http.StatusUnauthorized, []models.APIError{{
		Message: "You need to sign in to proceed.",
		Code:    models.CodeNotSignedIn,
	}})
}

func (u *HTTPHelper) SendErrors(c *gin.Context, status int, apiErrors []models.APIError) {
	c.JSON(status, models.ErrorResponse{
		Status: false,
		Errors: apiErrors,
	})
}

func (u *HTTPHelper) SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, models.SuccessResponse{
		Status:  true,
		Content: &models.Content{Data: data},
	})
}

func (u *HTTPHelper) SendSuccessWithMeta(c *gin.Context, data, meta interface{}) {
	c.JSON(http.StatusOK, models.SuccessResponse{
		Status:  true,
		Content: &models.Content{Meta: meta, Data: data},
	})
}

// SendOK sends the bare success envelope with no content.
func (u *HTTPHelper) SendOK(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse{Status: true})
}

// GetPageParams reads page/pageSize query params, clamped to sane values.
func (u *HTTPHelper) GetPageParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))

	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// GeneratePaging builds the list meta block.
func (u *HTTPHelper) GeneratePaging(page, pageSize int, total int64) models.PageMeta {
	pages := int(math.Ceil(float64(total) / float64(pageSize)))

	return models.PageMeta{
		Total: total,
		Pages: pages,
		Page:  page,
	}
}

// Underscore converts a struct field name to its snake_case param name.
func Underscore(s string) string {
	var out []rune
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				out = append(out, '_')
			}
			out = append(out, unicode.ToLower(r))
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}
