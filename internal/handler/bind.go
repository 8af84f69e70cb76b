package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/weiawesome/wes-social/pkg/apperr"
)

var registerTagNames sync.Once

// useJSONFieldNames makes validation errors report json field names.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindJSON decodes and validates the request body.
// A field of the wrong JSON type is a database error; anything missing,
// null, empty or unparsable is a validation failure.
func bindJSON(c *gin.Context, obj interface{}) error {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperr.Database(fmt.Sprintf("invalid type for field %s", typeErr.Field), err)
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return apperr.Wrap(apperr.ValidationFailed, fe.Field()+" is required", err)
		}
		return apperr.Wrap(apperr.ValidationFailed, fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag()), err)
	}

	return apperr.Wrap(apperr.ValidationFailed, "invalid request body", err)
}
