// Package is provides common string format constraints built on
// govalidator. Use them with [shapecheck.Validator.Constrain]:
//
//	id := shapecheck.String().Constrain(is.UUID)
package is

import (
	"github.com/asaskevich/govalidator"

	"github.com/go-shape/shapecheck"
)

var (
	// Email checks the address with govalidator's RFC-based matcher. The
	// looser shapecheck.Email covers the everyday case.
	Email = shapecheck.NewStringConstraint(govalidator.IsEmail, "String must be a valid email address")

	// URL checks for a well-formed URL.
	URL = shapecheck.NewStringConstraint(govalidator.IsURL, "String must be a valid URL")

	// UUID checks for any UUID version.
	UUID = shapecheck.NewStringConstraint(govalidator.IsUUID, "String must be a valid UUID")

	// UUIDv4 checks for a version 4 UUID.
	UUIDv4 = shapecheck.NewStringConstraint(govalidator.IsUUIDv4, "String must be a valid UUIDv4")

	// IP checks for an IPv4 or IPv6 address.
	IP = shapecheck.NewStringConstraint(govalidator.IsIP, "String must be a valid IP address")

	// IPv4 checks for an IPv4 address.
	IPv4 = shapecheck.NewStringConstraint(govalidator.IsIPv4, "String must be a valid IPv4 address")

	// IPv6 checks for an IPv6 address.
	IPv6 = shapecheck.NewStringConstraint(govalidator.IsIPv6, "String must be a valid IPv6 address")

	// Host checks for a DNS name or IP address.
	Host = shapecheck.NewStringConstraint(govalidator.IsHost, "String must be a valid host")

	// Port checks for a decimal port number in string form. For numeric
	// ports use shapecheck.Port.
	Port = shapecheck.NewStringConstraint(govalidator.IsPort, "String must be a valid port number")

	// JSON checks that the string parses as JSON.
	JSON = shapecheck.NewStringConstraint(govalidator.IsJSON, "String must be valid JSON")

	// Base64 checks for base64 content.
	Base64 = shapecheck.NewStringConstraint(govalidator.IsBase64, "String must be valid base64")

	// Semver checks for a semantic version like 1.2.3.
	Semver = shapecheck.NewStringConstraint(govalidator.IsSemver, "String must be a valid semantic version")

	// CreditCard checks the number against the Luhn algorithm.
	CreditCard = shapecheck.NewStringConstraint(govalidator.IsCreditCard, "String must be a valid credit card number")
)
