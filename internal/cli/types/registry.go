package types

import (
	"fmt"
	"time"
)

// RegistryType identifies which card registry an operation targets.
type RegistryType string

const (
	RegistryModel      RegistryType = "model"
	RegistryData       RegistryType = "data"
	RegistryExperiment RegistryType = "experiment"
	RegistryAudit      RegistryType = "audit"
	RegistryPrompt     RegistryType = "prompt"
	RegistryDeck       RegistryType = "deck"
)

// ParseRegistryType validates a raw registry name.
func ParseRegistryType(raw string) (RegistryType, error) {
	switch rt := RegistryType(raw); rt {
	case RegistryModel, RegistryData, RegistryExperiment, RegistryAudit, RegistryPrompt, RegistryDeck:
		return rt, nil
	default:
		return "", fmt.Errorf("unknown registry type: %q", raw)
	}
}

// SpaceResponse is the payload of the spaces route.
type SpaceResponse struct {
	Spaces []string `json:"spaces"`
}

// RegistryStats aggregates counts across one registry, optionally filtered
// by space or search term.
type RegistryStats struct {
	NbrNames    int `json:"nbr_names"`
	NbrSpaces   int `json:"nbr_spaces"`
	NbrVersions int `json:"nbr_versions"`
}

// RegistryStatsResponse is the payload of the registry stats route.
type RegistryStatsResponse struct {
	Stats RegistryStats `json:"stats"`
}

// CardSummary is one row of a registry page: the latest version of a card
// name plus how many versions exist under it.
type CardSummary struct {
	Space       string    `json:"space"`
	Name        string    `json:"name"`
	Version     string    `json:"version"`
	NbrVersions int       `json:"nbr_versions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RegistryPageResponse is the payload of the registry page route.
type RegistryPageResponse struct {
	Page []CardSummary `json:"page"`
}

// VersionSummary is one row of a version page for a single card name.
type VersionSummary struct {
	UID       string    `json:"uid"`
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
}

// VersionPageResponse is the payload of the version page route.
type VersionPageResponse struct {
	Page []VersionSummary `json:"page"`
}

// CardData holds the registered card fields inside a list record.
type CardData struct {
	UID       string    `json:"uid"`
	Name      string    `json:"name"`
	Space     string    `json:"space"`
	Version   string    `json:"version"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CardRecord is one element of the card list route, which wraps the card
// fields in a data envelope keyed by registry type.
type CardRecord struct {
	RegistryType RegistryType `json:"registry_type"`
	Data         CardData     `json:"data"`
}

// CardMetadata is the decoded metadata document for a single card.
type CardMetadata struct {
	UID           string            `json:"uid"`
	Name          string            `json:"name"`
	Space         string            `json:"space"`
	Version       string            `json:"version"`
	RegistryType  RegistryType      `json:"registry_type"`
	InterfaceType string            `json:"interface_type,omitempty"`
	DataType      string            `json:"data_type,omitempty"`
	Tags          []string          `json:"tags,omitempty"`
	URIs          map[string]string `json:"uris,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

// RegistryPageReturn bootstraps a registry page view. It is assembled only
// after the spaces, stats, and page fetches have all succeeded.
type RegistryPageReturn struct {
	Spaces       []string      `json:"spaces"`
	RegistryType RegistryType  `json:"registry_type"`
	Stats        RegistryStats `json:"registry_stats"`
	Page         []CardSummary `json:"registry_page"`
}
