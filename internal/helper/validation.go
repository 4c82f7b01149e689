package helper

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator mengembalikan instance bersama; nama field di pesan error
// memakai tag json supaya sama dengan yang dikirim client.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// FieldErrors memetakan error validator menjadi map field -> pesan.
func FieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	if err == nil {
		return out
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_error"] = []string{err.Error()}
		return out
	}

	for _, fe := range verrs {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "wajib diisi"
		case "latitude":
			msg = "harus latitude antara -90 dan 90"
		case "longitude":
			msg = "harus longitude antara -180 dan 180"
		case "oneof":
			msg = "harus salah satu dari: " + fe.Param()
		case "datetime":
			msg = "format tanggal harus " + fe.Param()
		case "min":
			msg = "minimal " + fe.Param()
		case "max":
			msg = "maksimal " + fe.Param()
		default:
			msg = "nilai tidak valid"
		}
		out[fe.Field()] = append(out[fe.Field()], msg)
	}
	return out
}
