package client

import (
	"context"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/aravindan888/opsml/internal/cli/types"
	"github.com/aravindan888/opsml/internal/domain"
)

// StatsRequest filters aggregate registry counts. Empty optional fields are
// omitted from the outgoing query.
type StatsRequest struct {
	RegistryType types.RegistryType
	SearchTerm   string
	Space        string
}

// PageRequest selects one page of a registry listing. Page uses a pointer so
// that page 0 is still sent when the caller asks for it; nil means the
// server's default page.
type PageRequest struct {
	RegistryType types.RegistryType
	SortBy       string
	Space        string
	SearchTerm   string
	Page         *int
}

// VersionPageRequest selects one page of version listings for a card name.
type VersionPageRequest struct {
	RegistryType types.RegistryType
	Space        string
	Name         string
	Page         *int
}

// CardUIDRequest identifies at most one card whose uid should be looked up.
type CardUIDRequest struct {
	RegistryType types.RegistryType
	Name         string
	Space        string
	Version      string
}

// SetupRequest bootstraps a registry page view. Name doubles as the search
// term for the stats and page fetches.
type SetupRequest struct {
	RegistryType types.RegistryType
	Space        string
	Name         string
}

// GetSpaces fetches the list of spaces known to one registry.
func (c *RegistryClient) GetSpaces(ctx context.Context, registryType types.RegistryType) (*types.SpaceResponse, error) {
	q := url.Values{}
	q.Set("registry_type", string(registryType))

	var out types.SpaceResponse
	if err := c.getJSON(ctx, endpointSpaces, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRegistryStats fetches aggregate stats, optionally filtered by search
// term and space.
func (c *RegistryClient) GetRegistryStats(ctx context.Context, req StatsRequest) (*types.RegistryStatsResponse, error) {
	q := url.Values{}
	q.Set("registry_type", string(req.RegistryType))
	if req.SearchTerm != "" {
		q.Set("search_term", req.SearchTerm)
	}
	if req.Space != "" {
		q.Set("space", req.Space)
	}

	var out types.RegistryStatsResponse
	if err := c.getJSON(ctx, endpointRegistryStats, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRegistryPage fetches one page of the registry listing.
func (c *RegistryClient) GetRegistryPage(ctx context.Context, req PageRequest) (*types.RegistryPageResponse, error) {
	q := url.Values{}
	q.Set("registry_type", string(req.RegistryType))
	if req.SortBy != "" {
		q.Set("sort_by", req.SortBy)
	}
	if req.Space != "" {
		q.Set("space", req.Space)
	}
	if req.SearchTerm != "" {
		q.Set("search_term", req.SearchTerm)
	}
	if req.Page != nil {
		q.Set("page", strconv.Itoa(*req.Page))
	}

	var out types.RegistryPageResponse
	if err := c.getJSON(ctx, endpointRegistryPage, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetVersionPage fetches one page of version listings for a card name.
func (c *RegistryClient) GetVersionPage(ctx context.Context, req VersionPageRequest) (*types.VersionPageResponse, error) {
	q := url.Values{}
	q.Set("registry_type", string(req.RegistryType))
	if req.Space != "" {
		q.Set("space", req.Space)
	}
	if req.Name != "" {
		q.Set("name", req.Name)
	}
	if req.Page != nil {
		q.Set("page", strconv.Itoa(*req.Page))
	}

	var out types.VersionPageResponse
	if err := c.getJSON(ctx, endpointVersionPage, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCardUID fetches at most one matching card and returns its uid. An empty
// result is a not-found error, never an index fault.
func (c *RegistryClient) GetCardUID(ctx context.Context, req CardUIDRequest) (string, error) {
	q := url.Values{}
	q.Set("registry_type", string(req.RegistryType))
	q.Set("limit", "1")
	if req.Name != "" {
		q.Set("name", req.Name)
	}
	if req.Space != "" {
		q.Set("space", req.Space)
	}
	if req.Version != "" {
		q.Set("version", req.Version)
	}

	var records []types.CardRecord
	if err := c.getJSON(ctx, endpointCardList, q, &records); err != nil {
		return "", err
	}

	if len(records) == 0 {
		return "", domain.NewNotFoundError("card", req.Name)
	}
	return records[0].Data.UID, nil
}

// ResolveUID reads name, space, version, and uid from URL query parameters.
// A present uid is returned directly with no network call; otherwise the
// card list is consulted.
func (c *RegistryClient) ResolveUID(ctx context.Context, params url.Values, registryType types.RegistryType) (string, error) {
	if uid := params.Get("uid"); uid != "" {
		return uid, nil
	}

	return c.GetCardUID(ctx, CardUIDRequest{
		RegistryType: registryType,
		Name:         params.Get("name"),
		Space:        params.Get("space"),
		Version:      params.Get("version"),
	})
}

// GetCardMetadata fetches the metadata document for a single card by uid.
func (c *RegistryClient) GetCardMetadata(ctx context.Context, uid string, registryType types.RegistryType) (*types.CardMetadata, error) {
	q := url.Values{}
	q.Set("uid", uid)
	q.Set("registry_type", string(registryType))

	var out types.CardMetadata
	if err := c.getJSON(ctx, endpointCardMetadata, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetupRegistryPage fetches spaces, stats, and the first listing page
// concurrently and assembles them into one bootstrap object. The first
// failure wins and no partial object is returned.
func (c *RegistryClient) SetupRegistryPage(ctx context.Context, req SetupRequest) (*types.RegistryPageReturn, error) {
	var (
		spaces *types.SpaceResponse
		stats  *types.RegistryStatsResponse
		page   *types.RegistryPageResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		spaces, err = c.GetSpaces(gctx, req.RegistryType)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = c.GetRegistryStats(gctx, StatsRequest{
			RegistryType: req.RegistryType,
			SearchTerm:   req.Name,
			Space:        req.Space,
		})
		return err
	})
	g.Go(func() error {
		var err error
		page, err = c.GetRegistryPage(gctx, PageRequest{
			RegistryType: req.RegistryType,
			Space:        req.Space,
			SearchTerm:   req.Name,
		})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &types.RegistryPageReturn{
		Spaces:       spaces.Spaces,
		RegistryType: req.RegistryType,
		Stats:        stats.Stats,
		Page:         page.Page,
	}, nil
}
