package service_test

import (
	"net/url"
	"testing"

	"sales-portal-backend/internal/database/models"
	"sales-portal-backend/internal/mocks"
	"sales-portal-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestResolveParams(t *testing.T) {
	storedPrefs := service.Preferences{
		Search:    "acme",
		Status:    string(models.LeadStatusQualified),
		SortBy:    models.SortByName,
		SortOrder: models.SortAsc,
		Limit:     25,
	}

	tests := []struct {
		name     string
		query    url.Values
		prefs    service.Preferences
		expected service.EffectiveParams
	}{
		{
			name:  "no URL and defaults",
			query: url.Values{},
			prefs: service.DefaultPreferences(),
			expected: service.EffectiveParams{
				Page:      1,
				Limit:     10,
				Search:    "",
				Status:    models.StatusAll,
				SortBy:    models.SortByScore,
				SortOrder: models.SortDesc,
			},
		},
		{
			name:  "no URL falls back to stored preferences",
			query: url.Values{},
			prefs: storedPrefs,
			expected: service.EffectiveParams{
				Page:      1,
				Limit:     25,
				Search:    "acme",
				Status:    string(models.LeadStatusQualified),
				SortBy:    models.SortByName,
				SortOrder: models.SortAsc,
			},
		},
		{
			name: "URL values override stored preferences per field",
			query: url.Values{
				"page":   {"3"},
				"search": {"cooper"},
				"sortBy": {"company"},
			},
			prefs: storedPrefs,
			expected: service.EffectiveParams{
				Page:      3,
				Limit:     25,
				Search:    "cooper",
				Status:    string(models.LeadStatusQualified),
				SortBy:    models.SortByCompany,
				SortOrder: models.SortAsc,
			},
		},
		{
			name: "malformed URL values fall through to the next layer",
			query: url.Values{
				"page":      {"zero"},
				"limit":     {"-5"},
				"status":    {"Bogus"},
				"sortBy":    {"width"},
				"sortOrder": {"sideways"},
			},
			prefs: storedPrefs,
			expected: service.EffectiveParams{
				Page:      1,
				Limit:     25,
				Search:    "acme",
				Status:    string(models.LeadStatusQualified),
				SortBy:    models.SortByName,
				SortOrder: models.SortAsc,
			},
		},
		{
			name: "explicit empty search in URL overrides stored term",
			query: url.Values{
				"search": {""},
			},
			prefs: storedPrefs,
			expected: service.EffectiveParams{
				Page:      1,
				Limit:     25,
				Search:    "",
				Status:    string(models.LeadStatusQualified),
				SortBy:    models.SortByName,
				SortOrder: models.SortAsc,
			},
		},
		{
			name: "All is accepted as a status filter",
			query: url.Values{
				"status": {models.StatusAll},
			},
			prefs: storedPrefs,
			expected: service.EffectiveParams{
				Page:      1,
				Limit:     25,
				Search:    "acme",
				Status:    models.StatusAll,
				SortBy:    models.SortByName,
				SortOrder: models.SortAsc,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.ResolveParams(service.NewValuesQueryState(tt.query), tt.prefs)
			assert.Equal(t, tt.expected, got)
		})
	}
}

type ParamResolverTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockPrefs *mocks.MockPreferenceServiceInterface
	query     *service.ValuesQueryState
	resolver  *service.ParamResolver
}

func (suite *ParamResolverTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPrefs = mocks.NewMockPreferenceServiceInterface(suite.ctrl)
	suite.query = service.NewValuesQueryState(url.Values{})
	suite.resolver = service.NewParamResolver(suite.query, suite.mockPrefs)
}

func (suite *ParamResolverTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ParamResolverTestSuite) TestSetPage_WritesURLOnly() {
	// no Save expectation: the page is never persisted
	suite.resolver.SetPage(4)

	assert.Equal(suite.T(), "4", suite.query.Values().Get("page"))
}

func (suite *ParamResolverTestSuite) TestSetPage_ClampsToOne() {
	suite.resolver.SetPage(0)

	assert.Equal(suite.T(), "1", suite.query.Values().Get("page"))
}

func (suite *ParamResolverTestSuite) TestSetSearch_WritesURLResetsPageAndPersists() {
	suite.query.Set("page", "7")
	suite.mockPrefs.EXPECT().Load().Return(service.DefaultPreferences())
	suite.mockPrefs.EXPECT().Save(gomock.Any()).Do(func(p service.Preferences) {
		assert.Equal(suite.T(), "cooper", p.Search)
	})

	suite.resolver.SetSearch("cooper")

	assert.Equal(suite.T(), "cooper", suite.query.Values().Get("search"))
	assert.Equal(suite.T(), "1", suite.query.Values().Get("page"))
}

func (suite *ParamResolverTestSuite) TestSetSearch_EmptyTermRemovesURLKey() {
	suite.query.Set("search", "cooper")
	suite.mockPrefs.EXPECT().Load().Return(service.DefaultPreferences())
	suite.mockPrefs.EXPECT().Save(gomock.Any()).Do(func(p service.Preferences) {
		assert.Equal(suite.T(), "", p.Search)
	})

	suite.resolver.SetSearch("")

	assert.False(suite.T(), suite.query.Values().Has("search"))
	assert.Equal(suite.T(), "1", suite.query.Values().Get("page"))
}

func (suite *ParamResolverTestSuite) TestSetStatusFilter_AllRemovesURLKeyButPersists() {
	suite.query.Set("status", string(models.LeadStatusNew))
	suite.mockPrefs.EXPECT().Load().Return(service.DefaultPreferences())
	suite.mockPrefs.EXPECT().Save(gomock.Any()).Do(func(p service.Preferences) {
		assert.Equal(suite.T(), models.StatusAll, p.Status)
	})

	suite.resolver.SetStatusFilter(models.StatusAll)

	assert.False(suite.T(), suite.query.Values().Has("status"))
	assert.Equal(suite.T(), "1", suite.query.Values().Get("page"))
}

func (suite *ParamResolverTestSuite) TestSetStatusFilter_WritesURLAndPersists() {
	suite.mockPrefs.EXPECT().Load().Return(service.DefaultPreferences())
	suite.mockPrefs.EXPECT().Save(gomock.Any()).Do(func(p service.Preferences) {
		assert.Equal(suite.T(), string(models.LeadStatusContacted), p.Status)
	})

	suite.resolver.SetStatusFilter(string(models.LeadStatusContacted))

	assert.Equal(suite.T(), string(models.LeadStatusContacted), suite.query.Values().Get("status"))
}

func (suite *ParamResolverTestSuite) TestSetSortBy_WritesURLResetsPageAndPersists() {
	suite.query.Set("page", "3")
	suite.mockPrefs.EXPECT().Load().Return(service.DefaultPreferences())
	suite.mockPrefs.EXPECT().Save(gomock.Any()).Do(func(p service.Preferences) {
		assert.Equal(suite.T(), models.SortByCompany, p.SortBy)
	})

	suite.resolver.SetSortBy(models.SortByCompany)

	assert.Equal(suite.T(), "company", suite.query.Values().Get("sortBy"))
	assert.Equal(suite.T(), "1", suite.query.Values().Get("page"))
}

func (suite *ParamResolverTestSuite) TestSetSortOrder_WritesURLResetsPageAndPersists() {
	suite.mockPrefs.EXPECT().Load().Return(service.DefaultPreferences())
	suite.mockPrefs.EXPECT().Save(gomock.Any()).Do(func(p service.Preferences) {
		assert.Equal(suite.T(), models.SortAsc, p.SortOrder)
	})

	suite.resolver.SetSortOrder(models.SortAsc)

	assert.Equal(suite.T(), "asc", suite.query.Values().Get("sortOrder"))
	assert.Equal(suite.T(), "1", suite.query.Values().Get("page"))
}

func (suite *ParamResolverTestSuite) TestReset_ClearsURLAndRewritesDefaults() {
	suite.query.Set("search", "cooper")
	suite.query.Set("status", string(models.LeadStatusNew))
	suite.query.Set("sortBy", "name")
	suite.query.Set("sortOrder", "asc")
	suite.query.Set("page", "5")
	suite.mockPrefs.EXPECT().Save(service.DefaultPreferences())

	suite.resolver.Reset()

	values := suite.query.Values()
	assert.False(suite.T(), values.Has("search"))
	assert.False(suite.T(), values.Has("status"))
	assert.False(suite.T(), values.Has("sortBy"))
	assert.False(suite.T(), values.Has("sortOrder"))
	assert.Equal(suite.T(), "1", values.Get("page"))
}

func (suite *ParamResolverTestSuite) TestParams_ReflectsQueryAndPreferences() {
	suite.query.Set("page", "2")
	suite.mockPrefs.EXPECT().Load().Return(service.Preferences{
		Search:    "acme",
		Status:    models.StatusAll,
		SortBy:    models.SortByScore,
		SortOrder: models.SortDesc,
		Limit:     10,
	})

	params := suite.resolver.Params()

	assert.Equal(suite.T(), 2, params.Page)
	assert.Equal(suite.T(), "acme", params.Search)
}

func TestParamResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ParamResolverTestSuite))
}
