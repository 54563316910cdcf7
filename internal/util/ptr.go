package util

func StringPtr(v string) *string { return &v }

func FloatPtr(v float64) *float64 { return &v }

// DerefFloat treats a nil float pointer as zero.
func DerefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
