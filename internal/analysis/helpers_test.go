package analysis

func floatPtr(f float64) *float64 {
	return &f
}
