package shapecheck

import (
	"math"
	"regexp"

	"github.com/asaskevich/govalidator"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Port accepts integer port numbers. Everything that passes the number gate
// but is not a whole number in [1, 65535] gets the one canonical message.
var Port = Number().Constrain(Refine(func(f float64) bool {
	return f == math.Trunc(f) && f >= 1 && f <= 65535
}, "Port must be between 1 and 65535"))

// Email accepts addresses with a local part, an @, and a dotted domain. No
// RFC 5322 ambitions, just the shape check that rejects obvious typos. For
// the stricter govalidator check use is.Email.
var Email = String().Constrain(Pattern(emailPattern))

// URL accepts well-formed URLs.
var URL = String().Constrain(Refine(govalidator.IsURL, "String must be a valid URL"))

// EnvConfig validates the environment record services boot from: NODE_ENV,
// PORT, and TRUST_PROXY, all required. The envcfg package parses the
// process environment into this shape and runs it through here.
var EnvConfig = Object(
	Field("NODE_ENV", String().Constrain(In("development", "production", "test"))),
	Field("PORT", Port),
	Field("TRUST_PROXY", Boolean()),
)
