package must

// Must panics if err is not nil, otherwise returns v.
// Only meant for package-level initialization.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
