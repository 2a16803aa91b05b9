package paging

import (
	"fmt"
	"reflect"
	"strings"
)

const (
	// WholeResponseExpr is the selector expression for the entire response.
	WholeResponseExpr = "*"
	// PassThroughPrefix marks a selector expression that echoes a request parameter.
	PassThroughPrefix = "^"
)

// SelectorKind identifies how a Selector projects a response.
type SelectorKind int

const (
	// SelectWholeResponse returns the response itself.
	SelectWholeResponse SelectorKind = iota
	// SelectField returns one field of the response.
	SelectField
	// SelectPassThrough returns one parameter of the request and ignores the response.
	SelectPassThrough
)

// Selector projects a response, or echoes a request parameter, into an output value.
// The zero value selects the whole response.
type Selector[Req, Resp any] struct {
	kind  SelectorKind
	name  string
	field func(resp *Resp) any
	param func(req *Req) any
}

// WholeResponse selects the entire response.
func WholeResponse[Req, Resp any]() Selector[Req, Resp] {
	return Selector[Req, Resp]{kind: SelectWholeResponse}
}

// Field selects a response field through get.
func Field[Req, Resp any](name string, get func(resp *Resp) any) Selector[Req, Resp] {
	return Selector[Req, Resp]{kind: SelectField, name: name, field: get}
}

// PassThrough echoes a request parameter through get.
func PassThrough[Req, Resp any](name string, get func(req *Req) any) Selector[Req, Resp] {
	return Selector[Req, Resp]{kind: SelectPassThrough, name: name, param: get}
}

// Kind returns the selector kind.
func (s Selector[Req, Resp]) Kind() SelectorKind {
	return s.kind
}

// Name returns the selected field or parameter name, empty for whole-response selectors.
func (s Selector[Req, Resp]) Name() string {
	return s.name
}

// PassThrough reports whether the selector ignores responses.
func (s Selector[Req, Resp]) PassThrough() bool {
	return s.kind == SelectPassThrough
}

// String returns the selector expression.
func (s Selector[Req, Resp]) String() string {
	switch s.kind {
	case SelectField:
		return s.name
	case SelectPassThrough:
		return PassThroughPrefix + s.name
	default:
		return WholeResponseExpr
	}
}

// Select evaluates the selector. resp may be nil; only pass-through selectors
// produce a value from a nil response.
func (s Selector[Req, Resp]) Select(req *Req, resp *Resp) any {
	switch s.kind {
	case SelectPassThrough:
		if req == nil {
			return nil
		}

		return s.param(req)
	case SelectField:
		if resp == nil {
			return nil
		}

		return s.field(resp)
	default:
		if resp == nil {
			return nil
		}

		return resp
	}
}

// ParseSelector resolves a selector expression against the Req and Resp struct types.
//
//	""        the default selector
//	"*"       whole response
//	"Name"    response field Name
//	"^Name"   request parameter Name
//
// Names match exported struct fields case-insensitively. Unknown names yield
// ErrInvalidSelector, so misconfiguration surfaces before any remote call.
func ParseSelector[Req, Resp any](expr string, def Selector[Req, Resp]) (Selector[Req, Resp], error) {
	expr = strings.TrimSpace(expr)

	switch {
	case expr == "":
		return def, nil
	case expr == WholeResponseExpr:
		return WholeResponse[Req, Resp](), nil
	case strings.HasPrefix(expr, PassThroughPrefix):
		name := strings.TrimSpace(strings.TrimPrefix(expr, PassThroughPrefix))

		index, canonical, ok := lookupField(reflect.TypeFor[Req](), name)
		if !ok {
			return Selector[Req, Resp]{}, fmt.Errorf("%w: no request parameter named %q", ErrInvalidSelector, name)
		}

		return PassThrough[Req, Resp](canonical, func(req *Req) any {
			return fieldValue(req, index)
		}), nil
	default:
		index, canonical, ok := lookupField(reflect.TypeFor[Resp](), expr)
		if !ok {
			return Selector[Req, Resp]{}, fmt.Errorf("%w: no response field named %q", ErrInvalidSelector, expr)
		}

		return Field[Req, Resp](canonical, func(resp *Resp) any {
			return fieldValue(resp, index)
		}), nil
	}
}

func lookupField(t reflect.Type, name string) ([]int, string, bool) {
	if name == "" || t.Kind() != reflect.Struct {
		return nil, "", false
	}

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}

		if strings.EqualFold(f.Name, name) {
			return f.Index, f.Name, true
		}
	}

	return nil, "", false
}

func fieldValue[T any](v *T, index []int) any {
	if v == nil {
		return nil
	}

	return reflect.ValueOf(v).Elem().FieldByIndex(index).Interface()
}
