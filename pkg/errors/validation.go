package errors

// PositiveInt returns an INVALID_ARGUMENT error unless value > 0.
func PositiveInt(value int, name string) error {
	if value <= 0 {
		return New(ErrCodeInvalidArgument, "expecting %s to be a positive integer, got %d", name, value)
	}
	return nil
}

// NonNegativeInt returns an INVALID_ARGUMENT error if value < 0.
func NonNegativeInt(value int, name string) error {
	if value < 0 {
		return New(ErrCodeInvalidArgument, "expecting %s not to be a negative number, got %d", name, value)
	}
	return nil
}

// IntBetween returns an INVALID_ARGUMENT error unless min <= value <= max.
func IntBetween(min, max, value int, name string) error {
	if value < min || value > max {
		return New(ErrCodeInvalidArgument, "expecting %s to be between %d and %d, got %d", name, min, max, value)
	}
	return nil
}

// Rate returns an INVALID_ARGUMENT error unless 0 <= value <= 1.
func Rate(value float64, name string) error {
	if value < 0 || value > 1 || value != value {
		return New(ErrCodeInvalidArgument, "expecting %s to be a rate between 0 and 1, got %v", name, value)
	}
	return nil
}
