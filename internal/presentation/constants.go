package presentation

const (
	TypeKey      = "Content-Type"
	CacheKey     = "Cache-Control"
	RefererKey   = "Referer"
	AdminKey     = "admin"
	FileField    = "file"
	NameParam    = "name"
	CountParam   = "count"
	SeedParam    = "seed"
	ReasonTag    = "X-Reason"
	NoCacheValue = "no-cache"
)
