package config

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultDatabaseURL is empty; must be provided via flag or environment.
	DefaultDatabaseURL = ""

	// DefaultPlatformAPIURL is the donation platform backend consumed for
	// profile and campaign data.
	DefaultPlatformAPIURL = "http://localhost:9000"

	// DefaultRateLimit is the default requests per minute per IP address.
	DefaultRateLimit = 100

	// DefaultCampaignLimit caps the number of campaigns substituted into a
	// share page in one render.
	DefaultCampaignLimit = 50

	// ShareIDLength is the length of generated share identifiers.
	ShareIDLength = 12
)
