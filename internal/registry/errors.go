package registry

import "fmt"

// DuplicateStorageError reports a storage name declared more than once in a
// single manifest.
type DuplicateStorageError struct {
	Name string
}

// Error implements the error interface for DuplicateStorageError.
func (e *DuplicateStorageError) Error() string {
	return fmt.Sprintf("storage %q is declared more than once", e.Name)
}

// UnknownStorageError reports a reference to a storage name that was never
// declared in the manifest.
type UnknownStorageError struct {
	Name string
}

// Error implements the error interface for UnknownStorageError.
func (e *UnknownStorageError) Error() string {
	return fmt.Sprintf("storage %q is not declared in the manifest", e.Name)
}

// UnsupportedStorageTypeError reports a storage declared with a provider
// type outside the supported set.
type UnsupportedStorageTypeError struct {
	Name string
	Type string
}

// Error implements the error interface for UnsupportedStorageTypeError.
func (e *UnsupportedStorageTypeError) Error() string {
	return fmt.Sprintf("storage %q: unsupported storage type %q", e.Name, e.Type)
}

// InvalidAuthError reports an auth mapping that does not satisfy the
// provider type's capability table: either a required field is missing, or
// a field outside the recognized capability set is present.
type InvalidAuthError struct {
	Type    string
	Field   string
	Missing bool
}

// Error implements the error interface for InvalidAuthError.
func (e *InvalidAuthError) Error() string {
	if e.Missing {
		return fmt.Sprintf("storage type %q requires auth field %q", e.Type, e.Field)
	}
	return fmt.Sprintf("storage type %q does not accept auth field %q", e.Type, e.Field)
}
