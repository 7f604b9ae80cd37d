package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// messageTable maps "Field.tag" to the message shown to API clients
type messageTable map[string]string

func validateWith(v any, messages messageTable) []string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		key := fe.StructField() + "." + fe.Tag()
		if msg, ok := messages[key]; ok {
			out = append(out, msg)
			continue
		}
		out = append(out, fmt.Sprintf("%s is invalid", fe.Field()))
	}
	return out
}

var (
	nonWordChars = regexp.MustCompile(`[^\w ]+`)
	spaceRuns    = regexp.MustCompile(` +`)
)

// Slugify lowercases a title, drops non-word characters and joins words with hyphens
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = nonWordChars.ReplaceAllString(s, "")
	return spaceRuns.ReplaceAllString(s, "-")
}
