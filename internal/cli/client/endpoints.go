package client

const (
	// API version prefix
	apiV1Prefix = "/api/v1"

	// Card registry endpoints
	endpointSpaces        = apiV1Prefix + "/card/spaces"         // GET - spaces for one registry
	endpointRegistryStats = apiV1Prefix + "/card/registry/stats" // GET - aggregate counts
	endpointRegistryPage  = apiV1Prefix + "/card/registry/page"  // GET - one listing page
	endpointCardList      = apiV1Prefix + "/card/list"           // GET - matching card records
	endpointCardMetadata  = apiV1Prefix + "/card/metadata"       // GET - metadata by uid
	endpointVersionPage   = apiV1Prefix + "/card/version/page"   // GET - one version page
)
