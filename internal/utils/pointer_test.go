package utils

import "testing"

func TestPtr(t *testing.T) {
	t.Run("float64", func(t *testing.T) {
		result := Ptr(0.7)
		if result == nil || *result != 0.7 {
			t.Fatalf("expected pointer to 0.7, got %v", result)
		}
	})

	t.Run("zero int", func(t *testing.T) {
		result := Ptr(0)
		if result == nil || *result != 0 {
			t.Fatalf("expected pointer to 0, got %v", result)
		}
	})

	t.Run("distinct pointers", func(t *testing.T) {
		value := 150
		a, b := Ptr(value), Ptr(value)
		if a == b {
			t.Error("expected distinct pointers for separate calls")
		}
	})
}
