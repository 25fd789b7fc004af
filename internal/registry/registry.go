package registry

import (
	"strconv"

	"github.com/vk/faasbind/internal/envkey"
)

// ID is the system-assigned identifier of a registered storage. IDs are
// unique within one compiled manifest and stable for every later reference
// to the same name; they carry no meaning across manifests.
type ID int

// String renders the identifier the way it is embedded in env-var keys.
func (id ID) String() string {
	return strconv.Itoa(int(id))
}

// Entry is one registered storage backend, frozen at registration time.
type Entry struct {
	ID   ID
	Name string
	Type string
	Auth map[string]string
}

// Registry holds every storage backend declared by a single manifest and
// the name-to-identifier table built from it. A Registry is owned by one
// compilation run and is never shared across runs.
type Registry struct {
	byName map[string]*Entry
	order  []*Entry
	nextID ID
}

// New creates an empty Registry. Identifier assignment starts at 1.
func New() *Registry {
	return &Registry{
		byName: make(map[string]*Entry),
		nextID: 1,
	}
}

// Register assigns a previously-unused identifier to a new storage name,
// validating the name, the provider type, and the auth mapping first. The
// identifier is a counter in registration order, so compiling the same
// manifest twice assigns the same identifiers.
func (r *Registry) Register(name, storageType string, auth map[string]string) (ID, error) {
	if err := envkey.CheckName(name); err != nil {
		return 0, err
	}
	if _, exists := r.byName[name]; exists {
		return 0, &DuplicateStorageError{Name: name}
	}
	if _, ok := ProviderFor(storageType); !ok {
		return 0, &UnsupportedStorageTypeError{Name: name, Type: storageType}
	}
	if err := ValidateAuth(storageType, auth); err != nil {
		return 0, err
	}

	entry := &Entry{
		ID:   r.nextID,
		Name: name,
		Type: storageType,
		Auth: auth,
	}
	r.byName[name] = entry
	r.order = append(r.order, entry)
	r.nextID++
	return entry.ID, nil
}

// Resolve returns the identifier assigned to a known storage name.
func (r *Registry) Resolve(name string) (ID, error) {
	entry, ok := r.byName[name]
	if !ok {
		return 0, &UnknownStorageError{Name: name}
	}
	return entry.ID, nil
}

// Entries returns all registered storages in registration order. The slice
// is shared; callers must not mutate it.
func (r *Registry) Entries() []*Entry {
	return r.order
}

// ValidateAuth checks an auth mapping against the provider type's capability
// table: every required field must be present, and no field outside the
// recognized capability set may appear.
func ValidateAuth(storageType string, auth map[string]string) error {
	provider, ok := ProviderFor(storageType)
	if !ok {
		return &UnsupportedStorageTypeError{Type: storageType}
	}
	for _, field := range provider.Required {
		if _, present := auth[field]; !present {
			return &InvalidAuthError{Type: storageType, Field: field, Missing: true}
		}
	}
	for field := range auth {
		if !provider.accepts(field) {
			return &InvalidAuthError{Type: storageType, Field: field}
		}
	}
	return nil
}
