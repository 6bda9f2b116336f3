package infer

import (
	"errors"
	"testing"
)

func TestNormalizeAnnotation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"int", "int"},
		{"double", "double"},
		{"float", "float"},
		{"bool", "bool"},
		{"TeamMember", "TeamMember"},
		{"Acc", "Acc:double"},
		{"Acc[double]", "Acc:double"},
		{"View2D[double]", "View2D:double"},
		{"View1D[float64]", "View1D:double"},
		{"View3D[int32]", "View3D:int32"},
		{"int64", "numpy:int64"},
		{"float64", "numpy:double"},
		{"float32", "numpy:float"},
		{"uint16", "numpy:uint16"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeAnnotation(tt.in)
			if err != nil {
				t.Fatalf("NormalizeAnnotation(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeAnnotation(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeAnnotationErrors(t *testing.T) {
	for _, in := range []string{"str", "View2D", "View2D[complex]", "Matrix[double]", ""} {
		_, err := NormalizeAnnotation(in)
		var typeErr *UnsupportedTypeError
		if !errors.As(err, &typeErr) {
			t.Errorf("NormalizeAnnotation(%q) error = %v, want UnsupportedTypeError", in, err)
		}
	}
}
