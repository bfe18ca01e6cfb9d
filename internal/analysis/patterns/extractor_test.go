package patterns

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkonduri/LegalAPI/internal/domain/docModel"
)

const sampleContract = `This Agreement is made between John Smith and TechCorp Inc.
This agreement may be terminated with 30 days written notice by either party.
Payment terms: $120,000 due by 12/31/2025, invoiced monthly.
All proprietary information shall remain confidential. Disputes go to arbitration.`

func TestExtractEntities(t *testing.T) {
	bundle := ExtractEntities(sampleContract)

	require.Len(t, bundle, len(docModel.EntityTypes))
	assert.Contains(t, bundle[docModel.Persons], "John Smith")
	assert.Contains(t, bundle[docModel.Organizations], "TechCorp Inc.")
	assert.Contains(t, bundle[docModel.Dates], "12/31/2025")
	assert.Contains(t, bundle[docModel.Money], "$120,000")
	assert.Empty(t, bundle[docModel.Locations])
}

func TestExtractEntitiesKeepsShortButValidNames(t *testing.T) {
	bundle := ExtractEntities("Al Bo signed for Jane Doe.")

	assert.Contains(t, bundle[docModel.Persons], "Al Bo")
	assert.Contains(t, bundle[docModel.Persons], "Jane Doe")
}

func TestExtractEntitiesDeduplicates(t *testing.T) {
	bundle := ExtractEntities("John Smith met John Smith. $500 plus $500.")

	assert.Equal(t, []string{"John Smith"}, bundle[docModel.Persons])
	assert.Equal(t, []string{"$500"}, bundle[docModel.Money])
}

func TestExtractEntitiesEmptyInput(t *testing.T) {
	bundle := ExtractEntities("")

	require.Len(t, bundle, len(docModel.EntityTypes))
	for _, et := range docModel.EntityTypes {
		assert.Empty(t, bundle[et])
	}
}

func TestExtractClausesFindsTerminationContext(t *testing.T) {
	clauses := ExtractClauses(sampleContract)

	require.NotEmpty(t, clauses[docModel.Termination])
	found := false
	for _, snippet := range clauses[docModel.Termination] {
		if strings.Contains(snippet, "terminated with 30 days written notice") {
			found = true
		}
	}
	assert.True(t, found, "termination snippets: %v", clauses[docModel.Termination])
}

func TestExtractClausesAllCategoriesPresent(t *testing.T) {
	clauses := ExtractClauses("nothing legal here")

	require.Len(t, clauses, len(docModel.ClauseCategories))
	for _, c := range docModel.ClauseCategories {
		snippets, ok := clauses[c]
		assert.True(t, ok, "category %s missing", c)
		assert.Empty(t, snippets)
	}
}

func TestExtractClausesCollapsesWhitespace(t *testing.T) {
	clauses := ExtractClauses("the   parties\n\tagree that confidential\n\ninformation stays private")

	require.NotEmpty(t, clauses[docModel.Confidentiality])
	snippet := clauses[docModel.Confidentiality][0]
	assert.NotContains(t, snippet, "\n")
	assert.NotContains(t, snippet, "  ")
	assert.Equal(t, strings.TrimSpace(snippet), snippet)
}

func TestExtractClausesWindowClipsToBounds(t *testing.T) {
	clauses := ExtractClauses("arbitration")

	require.Len(t, clauses[docModel.DisputeResolution], 1)
	assert.Equal(t, "arbitration", clauses[docModel.DisputeResolution][0])
}

func TestExtractClausesOrderPreservingDedup(t *testing.T) {
	// Both "invoice" matches share one window because the text is short.
	clauses := ExtractClauses("invoice invoice")

	assert.Equal(t, []string{"invoice invoice"}, clauses[docModel.Payment])
}

func TestExtractIsIdempotent(t *testing.T) {
	assert.Equal(t, ExtractEntities(sampleContract), ExtractEntities(sampleContract))
	assert.Equal(t, ExtractClauses(sampleContract), ExtractClauses(sampleContract))
}
