// Package registry implements the in-memory card store behind the mock
// dashboard server. It is seeded once at startup and read-only afterwards,
// so handlers can share it without locking.
package registry

import (
	"sort"
	"strings"

	"github.com/aravindan888/opsml/internal/cli/types"
	"github.com/aravindan888/opsml/internal/domain"
)

// PageSize is the number of rows returned per registry or version page.
const PageSize = 30

// Store indexes seeded cards by registry type.
type Store struct {
	cards map[types.RegistryType][]types.CardMetadata
}

// NewStore builds a store from seed cards.
func NewStore(seed []types.CardMetadata) *Store {
	s := &Store{cards: make(map[types.RegistryType][]types.CardMetadata)}
	for _, card := range seed {
		s.cards[card.RegistryType] = append(s.cards[card.RegistryType], card)
	}
	return s
}

// Spaces returns the sorted distinct spaces of one registry.
func (s *Store) Spaces(registryType types.RegistryType) []string {
	seen := make(map[string]struct{})
	spaces := make([]string, 0)
	for _, card := range s.cards[registryType] {
		if _, ok := seen[card.Space]; ok {
			continue
		}
		seen[card.Space] = struct{}{}
		spaces = append(spaces, card.Space)
	}
	sort.Strings(spaces)
	return spaces
}

// Stats aggregates counts for one registry, optionally filtered by space and
// search term.
func (s *Store) Stats(registryType types.RegistryType, searchTerm, space string) types.RegistryStats {
	names := make(map[string]struct{})
	spaces := make(map[string]struct{})
	versions := 0
	for _, card := range s.cards[registryType] {
		if !matches(card, searchTerm, space) {
			continue
		}
		names[card.Space+"/"+card.Name] = struct{}{}
		spaces[card.Space] = struct{}{}
		versions++
	}
	return types.RegistryStats{
		NbrNames:    len(names),
		NbrSpaces:   len(spaces),
		NbrVersions: versions,
	}
}

// Page returns one page of card summaries, grouped by space/name with the
// latest version on top of each group.
func (s *Store) Page(registryType types.RegistryType, sortBy, space, searchTerm string, page int) []types.CardSummary {
	groups := make(map[string]*types.CardSummary)
	for _, card := range s.cards[registryType] {
		if !matches(card, searchTerm, space) {
			continue
		}
		key := card.Space + "/" + card.Name
		summary, ok := groups[key]
		if !ok {
			groups[key] = &types.CardSummary{
				Space:       card.Space,
				Name:        card.Name,
				Version:     card.Version,
				NbrVersions: 1,
				CreatedAt:   card.CreatedAt,
				UpdatedAt:   card.CreatedAt,
			}
			continue
		}
		summary.NbrVersions++
		if card.CreatedAt.Before(summary.CreatedAt) {
			summary.CreatedAt = card.CreatedAt
		}
		if card.CreatedAt.After(summary.UpdatedAt) {
			summary.UpdatedAt = card.CreatedAt
			summary.Version = card.Version
		}
	}

	rows := make([]types.CardSummary, 0, len(groups))
	for _, summary := range groups {
		rows = append(rows, *summary)
	}

	switch sortBy {
	case "name":
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Name == rows[j].Name {
				return rows[i].Space < rows[j].Space
			}
			return rows[i].Name < rows[j].Name
		})
	default:
		// most recently updated first; space/name break timestamp ties so
		// page boundaries stay stable across requests
		sort.Slice(rows, func(i, j int) bool {
			if !rows[i].UpdatedAt.Equal(rows[j].UpdatedAt) {
				return rows[i].UpdatedAt.After(rows[j].UpdatedAt)
			}
			if rows[i].Space != rows[j].Space {
				return rows[i].Space < rows[j].Space
			}
			return rows[i].Name < rows[j].Name
		})
	}

	return paginate(rows, page)
}

// List returns up to limit card records matching name, space, and version.
// limit <= 0 means unlimited.
func (s *Store) List(registryType types.RegistryType, name, space, version string, limit int) []types.CardRecord {
	records := make([]types.CardRecord, 0)
	for _, card := range s.cards[registryType] {
		if name != "" && card.Name != name {
			continue
		}
		if space != "" && card.Space != space {
			continue
		}
		if version != "" && card.Version != version {
			continue
		}
		records = append(records, types.CardRecord{
			RegistryType: registryType,
			Data: types.CardData{
				UID:       card.UID,
				Name:      card.Name,
				Space:     card.Space,
				Version:   card.Version,
				Tags:      card.Tags,
				CreatedAt: card.CreatedAt,
			},
		})
		if limit > 0 && len(records) == limit {
			break
		}
	}
	return records
}

// Metadata looks up one card by uid.
func (s *Store) Metadata(registryType types.RegistryType, uid string) (types.CardMetadata, error) {
	for _, card := range s.cards[registryType] {
		if card.UID == uid {
			return card, nil
		}
	}
	return types.CardMetadata{}, domain.NewNotFoundError("card", uid)
}

// VersionPage returns one page of versions for a card name, newest first.
func (s *Store) VersionPage(registryType types.RegistryType, space, name string, page int) []types.VersionSummary {
	rows := make([]types.VersionSummary, 0)
	for _, card := range s.cards[registryType] {
		if name != "" && card.Name != name {
			continue
		}
		if space != "" && card.Space != space {
			continue
		}
		rows = append(rows, types.VersionSummary{
			UID:       card.UID,
			Version:   card.Version,
			CreatedAt: card.CreatedAt,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
	return paginate(rows, page)
}

func matches(card types.CardMetadata, searchTerm, space string) bool {
	if space != "" && card.Space != space {
		return false
	}
	if searchTerm != "" {
		term := strings.ToLower(searchTerm)
		if !strings.Contains(strings.ToLower(card.Name), term) &&
			!strings.Contains(strings.ToLower(card.Space), term) {
			return false
		}
	}
	return true
}

func paginate[T any](rows []T, page int) []T {
	if page < 0 {
		page = 0
	}
	start := page * PageSize
	if start >= len(rows) {
		return []T{}
	}
	end := start + PageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}
