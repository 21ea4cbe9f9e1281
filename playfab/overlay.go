package playfab

import (
	"reflect"

	"github.com/pkg/errors"
)

// buildRecord returns a copy of req (or a new record when req is nil) with overrides applied in order.
// req itself is never modified.
func buildRecord[Req any](req *Req, overrides []any) (*Req, error) {
	var record Req
	if req != nil {
		record = *req
	}
	for _, o := range overrides {
		var src Req
		switch fields := o.(type) {
		case Req:
			src = fields
		case *Req:
			if fields == nil {
				continue
			}
			src = *fields
		default:
			return nil, errors.WithMessagef(ErrOverrideType, "got %T, want %T", o, record)
		}
		overlay(reflect.ValueOf(&record).Elem(), reflect.ValueOf(src))
	}
	return &record, nil
}

// overlay copies the non-zero fields of src into dst. Embedded structs are merged field by field.
func overlay(dst, src reflect.Value) {
	if src.Kind() != reflect.Struct {
		if !src.IsZero() {
			dst.Set(src)
		}
		return
	}
	t := src.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		sv := src.Field(i)
		if field.Anonymous && sv.Kind() == reflect.Struct {
			overlay(dst.Field(i), sv)
			continue
		}
		if sv.IsZero() {
			continue
		}
		dst.Field(i).Set(sv)
	}
}
