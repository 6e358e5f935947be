package domain

// Cache keys derived from the coordinate store
const (
	CacheKeyAllCoordinates        = "coordinates:all"
	CacheKeyExistingGeoreferences = "coordinates:georeferences"
	CacheKeyGeoreferenceStats     = "stats:georeferences"
)

// GeoreferenceCacheKeys lists every key a coordinate write invalidates
var GeoreferenceCacheKeys = []string{
	CacheKeyAllCoordinates,
	CacheKeyExistingGeoreferences,
	CacheKeyGeoreferenceStats,
}
