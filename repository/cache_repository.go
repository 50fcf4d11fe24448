package repository

// CacheRepository stores serialized evaluation results keyed by a profile
// hash. A miss is not an error; callers recompute on miss.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
