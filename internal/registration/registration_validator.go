package registration

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Daftarkan nama field dari tag json supaya pesan "Missing: ..." memakai
// nama yang dilihat klien, bukan nama field Go.
var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// emailRegexp is the intentionally loose syntactic gate the form and the
// handler share: local part, "@", domain, dot, suffix, no whitespace.
var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether the trimmed value passes the email gate.
func IsValidEmail(email string) bool {
	return emailRegexp.MatchString(strings.TrimSpace(email))
}

// ShowsEntrepreneurship reports whether the entrepreneurship section applies
// to the given interest type.
func ShowsEntrepreneurship(interestType string) bool {
	t := strings.ToLower(interestType)
	return t == "entrepreneurship" || t == "both"
}

// ShowsClient reports whether the client section applies to the given
// interest type.
func ShowsClient(interestType string) bool {
	t := strings.ToLower(interestType)
	return t == "client" || t == "both"
}

// missingFields collects every absent required field instead of stopping at
// the first, in request field order.
func missingFields(req SubmitRegistrationRequest) []string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"request"}
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return missing
}
