package registry_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexpan006/blockdash-api/internal/domain"
	"github.com/alexpan006/blockdash-api/internal/registry"
)

func writeCollectionsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "collections.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCollections(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		expectedErr  string // Error message to assert, empty means no error expected
		validateFunc func(t *testing.T, reg registry.CollectionRegistry)
	}{
		{
			name: "successful load with valid JSON",
			content: `[
				{"slug": "degods-eth", "contract_address": "0x8821bee2ba0df28761afff119d66390d594cd280", "name": "DeGods"},
				{"slug": "boredapeyachtclub", "contract_address": "0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d", "name": "Bored Ape Yacht Club"}
			]`,
			validateFunc: func(t *testing.T, reg registry.CollectionRegistry) {
				all := reg.All()
				require.Len(t, all, 2)
				assert.Equal(t, "degods-eth", all[0].Slug)

				c, err := reg.Get("degods-eth")
				require.NoError(t, err)
				// Addresses are stored in checksum form
				assert.Equal(t, "0x8821BeE2ba0dF28761AffF119D66390D594CD280", c.ContractAddress)

				c, err = reg.Get("  BoredApeYachtClub ")
				require.NoError(t, err)
				assert.Equal(t, "Bored Ape Yacht Club", c.Name)
			},
		},
		{
			name: "unknown slug",
			content: `[
				{"slug": "degods-eth", "contract_address": "0x8821bee2ba0df28761afff119d66390d594cd280", "name": "DeGods"}
			]`,
			validateFunc: func(t *testing.T, reg registry.CollectionRegistry) {
				_, err := reg.Get("cryptopunks")
				assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
			},
		},
		{
			name:        "invalid JSON",
			content:     `{"not": "a list"}`,
			expectedErr: "failed to parse collections JSON",
		},
		{
			name:        "entry without slug",
			content:     `[{"slug": "", "contract_address": "0x123", "name": "Broken"}]`,
			expectedErr: "without a slug",
		},
		{
			name: "duplicate slug",
			content: `[
				{"slug": "degods-eth", "contract_address": "0x1", "name": "A"},
				{"slug": "degods-eth", "contract_address": "0x2", "name": "B"}
			]`,
			expectedErr: "duplicate slug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := registry.LoadCollections(writeCollectionsFile(t, tt.content))

			if tt.expectedErr != "" {
				assert.ErrorContains(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			tt.validateFunc(t, reg)
		})
	}
}

func TestLoadCollections_MissingFile(t *testing.T) {
	_, err := registry.LoadCollections(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorContains(t, err, "failed to read collections file")
}
