package api

import (
	"errors"
	"net/http"
	"regexp"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation is the one job of this layer: the rental core trusts its inputs,
// so malformed dates, times, enums and counts must die here. The taxonomy is
// MISSING_FIELD, INVALID_FORMAT, INVALID_ENUM, INVALID_COUNT, with
// INVALID_REQUEST for payloads that do not even parse.

var hhmmRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

var registerOnce sync.Once

func registerValidations() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			return hhmmRe.MatchString(fl.Field().String())
		})
		v.RegisterValidation("dateiso", func(fl validator.FieldLevel) bool {
			_, err := time.Parse("2006-01-02", fl.Field().String())
			return err == nil
		})
	})
}

func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	fe := verrs[0]
	code := "INVALID_REQUEST"
	switch fe.Tag() {
	case "required":
		code = "MISSING_FIELD"
	case "hhmm", "dateiso", "email":
		code = "INVALID_FORMAT"
	case "oneof":
		code = "INVALID_ENUM"
	case "gt", "gte", "min":
		code = "INVALID_COUNT"
	}
	c.JSON(http.StatusBadRequest, gin.H{"code": code, "message": fe.Error()})
}
