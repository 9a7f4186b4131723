//go:build e2e

package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-bdjobs-e2e/internal/testdata"
	"go-bdjobs-e2e/utils"
)

func TestSearchByKeyword(t *testing.T) {
	skipLive(t)
	s := openSite(t)

	keyword := testdata.SearchTerms[0]
	require.NoError(t, s.Home.SearchJob(keyword))

	count, err := s.Search.ResultsCount()
	require.NoError(t, err)
	assert.Positive(t, count, "expected results for %q", keyword)

	_, err = utils.SaveTestResultsIn(suiteCfg.ResultsDir, "search_by_keyword", map[string]any{
		"keyword": keyword,
		"results": count,
	})
	require.NoError(t, err)
}

func TestFilterSearchResults(t *testing.T) {
	skipLive(t)
	s := openSite(t)

	require.NoError(t, s.Home.SearchJob(testdata.SearchTerms[0]))

	initial, err := s.Search.ResultsCount()
	require.NoError(t, err)

	require.NoError(t, s.Search.FilterByLocation(testdata.Locations[0]))

	filtered, err := s.Search.ResultsCount()
	require.NoError(t, err)
	assert.LessOrEqual(t, filtered, initial, "filtering must not grow the result set")
}

func TestViewJobDetails(t *testing.T) {
	skipLive(t)
	s := openSite(t)

	require.NoError(t, s.Home.SearchJob(testdata.SearchTerms[0]))

	listingTitle, err := s.Search.JobTitleAt(0)
	require.NoError(t, err)
	require.NotEmpty(t, listingTitle)

	require.NoError(t, s.Search.OpenJobByIndex(0))

	detailTitle, err := s.Details.JobTitle()
	require.NoError(t, err)
	assert.NotEmpty(t, detailTitle)

	//titles match regardless of case or accents
	assert.Equal(t, utils.NormalizeText(listingTitle), utils.NormalizeText(detailTitle))
}

func TestBrowseByCategory(t *testing.T) {
	skipLive(t)
	s := openSite(t)

	require.NoError(t, s.Home.SelectJobCategory(testdata.JobCategories[0]))

	count, err := s.Search.ResultsCount()
	require.NoError(t, err)
	assert.Positive(t, count)
}
