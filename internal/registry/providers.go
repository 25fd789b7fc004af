package registry

// Supported provider types. The set is closed: a manifest naming any other
// type fails with UnsupportedStorageTypeError.
const (
	TypeMinio   = "minio"
	TypeS3      = "s3"
	TypeOnedata = "onedata"
)

// Auth capability fields. No field outside this set may appear in a
// storage's auth mapping, regardless of provider type.
const (
	FieldUser  = "user"
	FieldPass  = "pass"
	FieldToken = "token"
	FieldSpace = "space"
	FieldHost  = "host"
)

// Provider describes one supported storage backend type: the auth capability
// fields it requires and the ones it additionally accepts. Adding a provider
// type means adding one descriptor to the table below.
type Provider struct {
	Type     string
	Required []string
	Optional []string
}

// providers is the closed capability table, keyed by provider type.
// s3 requires nothing because the runner may rely on ambient credentials.
var providers = map[string]Provider{
	TypeMinio: {
		Type:     TypeMinio,
		Required: []string{FieldUser, FieldPass, FieldHost},
		Optional: []string{FieldToken},
	},
	TypeS3: {
		Type:     TypeS3,
		Required: nil,
		Optional: []string{FieldUser, FieldPass, FieldToken, FieldHost},
	},
	TypeOnedata: {
		Type:     TypeOnedata,
		Required: []string{FieldSpace, FieldToken},
		Optional: []string{FieldHost},
	},
}

// ProviderFor looks up the capability descriptor for a provider type.
func ProviderFor(storageType string) (Provider, bool) {
	p, ok := providers[storageType]
	return p, ok
}

// accepts reports whether the provider allows the given auth field at all,
// either as a required or an optional capability.
func (p Provider) accepts(field string) bool {
	for _, f := range p.Required {
		if f == field {
			return true
		}
	}
	for _, f := range p.Optional {
		if f == field {
			return true
		}
	}
	return false
}
