package models

func StringPtr(s string) *string { return &s }

func IntPtr(i int) *int { return &i }

func BoolPtr(b bool) *bool { return &b }

// stringOr treats nil and "" as unset.
func stringOr(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}

// intOr treats nil and 0 as unset.
func intOr(v *int, def int) int {
	if v == nil || *v == 0 {
		return def
	}
	return *v
}

func nonEmpty(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	s := *v
	return &s
}

func nonZero(v *int) *int {
	if v == nil || *v == 0 {
		return nil
	}
	i := *v
	return &i
}
