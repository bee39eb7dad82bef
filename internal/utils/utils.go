package utils

func StringPtr(s string) *string {
	return &s
}

func IntPtr(i int) *int {
	return &i
}

func DefaultString(s *string, defaultValue string) string {
	if s == nil {
		return defaultValue
	}
	return *s
}

func DefaultInt(i *int, defaultValue int) int {
	if i == nil {
		return defaultValue
	}
	return *i
}
