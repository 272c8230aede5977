package handlers

import (
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the custom binding tags used by the DTOs:
// "objectid" for document IDs and "grade" for performance grades.
// Field names in validation errors follow the JSON tags.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
			return primitive.IsValidObjectID(fl.Field().String())
		})
		_ = v.RegisterValidation("grade", func(fl validator.FieldLevel) bool {
			return domain.Grade(fl.Field().String()).Valid()
		})
	})
}

func jsonFieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}
