// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// column returns column name of t, which must be non-empty.
func column(t *table.Table, name string) (interface{}, error) {
	if t == nil || t.Len() == 0 {
		return nil, ErrEmpty
	}
	col := t.Column(name)
	if col == nil {
		return nil, fmt.Errorf("column %q: %w", name, ErrUnknownColumn)
	}
	return col, nil
}

func isNumeric(col interface{}) bool {
	switch reflect.TypeOf(col).Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// floatColumn returns column name of t converted to []float64. The
// result is a new slice. NaN values are allowed, but infinities are
// an error.
func floatColumn(t *table.Table, name string) ([]float64, error) {
	col, err := column(t, name)
	if err != nil {
		return nil, err
	}
	if !isNumeric(col) {
		return nil, fmt.Errorf("column %q: %w", name, ErrNotNumeric)
	}
	var xs []float64
	slice.Convert(&xs, col)
	for _, x := range xs {
		if math.IsInf(x, 0) {
			return nil, fmt.Errorf("column %q: %w", name, ErrNotFinite)
		}
	}
	// Convert may alias a []float64 column.
	return append([]float64(nil), xs...), nil
}

// dropNaN returns xs without its NaN elements. It may reuse xs.
func dropNaN(xs []float64) []float64 {
	out := xs[:0]
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	return out
}

// labels formats each cell of col for display. Missing cells (NaN
// numbers and empty strings) have ok[i] false. If col is numeric,
// keys holds the numeric value of each cell for ordering.
func labels(col interface{}) (labels []string, keys []float64, ok []bool) {
	v := reflect.ValueOf(col)
	n := v.Len()
	labels, ok = make([]string, n), make([]bool, n)
	if isNumeric(col) {
		slice.Convert(&keys, col)
	}
	for i := 0; i < n; i++ {
		elt := v.Index(i)
		switch elt.Kind() {
		case reflect.Float32, reflect.Float64:
			x := elt.Float()
			if math.IsNaN(x) {
				continue
			}
			labels[i] = strconv.FormatFloat(x, 'g', -1, 64)
		case reflect.String:
			if elt.String() == "" {
				continue
			}
			labels[i] = elt.String()
		default:
			labels[i] = fmt.Sprint(elt.Interface())
		}
		ok[i] = true
	}
	return
}
