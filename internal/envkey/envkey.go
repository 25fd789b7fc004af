// Package envkey owns the environment-variable key grammar shared by the
// compiler and the job runner, plus validation of storage names so that every
// assigned identifier embeds safely into a key.
package envkey

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	inputPrefix  = "STORAGE_PATH_INPUT_"
	outputPrefix = "STORAGE_PATH_OUTPUT_"
	suffixPrefix = "STORAGE_PATH_SUFFIX_"
	prefixPrefix = "STORAGE_PATH_PREFIX_"
	authPrefix   = "STORAGE_AUTH_"
)

// namePattern constrains storage names to a lowercase, hyphen/dot/underscore
// friendly alphabet. The first character must be alphanumeric.
var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// InvalidNameError reports a storage name that cannot be used as a manifest key.
type InvalidNameError struct {
	Name string
}

// Error implements the error interface for InvalidNameError.
func (e *InvalidNameError) Error() string {
	if e.Name == "" {
		return "storage name must not be empty"
	}
	return fmt.Sprintf("invalid storage name %q: must match %s", e.Name, namePattern.String())
}

// CheckName validates a storage name against the manifest naming rules.
func CheckName(name string) error {
	if !namePattern.MatchString(name) {
		return &InvalidNameError{Name: name}
	}
	return nil
}

// Input returns the key holding the input path for the given storage id.
func Input(id int) string {
	return inputPrefix + strconv.Itoa(id)
}

// Output returns the key holding the output path for the given storage id.
func Output(id int) string {
	return outputPrefix + strconv.Itoa(id)
}

// Suffix returns the key holding the suffix file filter for the given storage id.
func Suffix(id int) string {
	return suffixPrefix + strconv.Itoa(id)
}

// Prefix returns the key holding the prefix file filter for the given storage id.
func Prefix(id int) string {
	return prefixPrefix + strconv.Itoa(id)
}

// Auth returns the key holding one auth capability value for a storage. The
// provider type and field name are upper-cased into the key.
func Auth(storageType, field string, id int) string {
	return authPrefix + strings.ToUpper(storageType) + "_" + strings.ToUpper(field) + "_" + strconv.Itoa(id)
}
