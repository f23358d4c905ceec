// Package dto holds the camelCase request and response shapes of the site
// content endpoints and the functions mapping them to and from the models.
package dto

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// MapSlice applies fn to every element of in.
func MapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
