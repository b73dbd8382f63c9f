package handlers_test

import (
	"net/http"
	"testing"

	"sales-portal-backend/internal/api/handlers"
	"sales-portal-backend/internal/database/models"
	"sales-portal-backend/internal/mocks"
	"sales-portal-backend/internal/service"
	"sales-portal-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PreferenceHandlerTestSuite defines the test suite for PreferenceHandler
type PreferenceHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockPrefs *mocks.MockPreferenceServiceInterface
	handler   *handlers.PreferenceHandler
	httpSuite *testutils.HTTPTestSuite
}

func (suite *PreferenceHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPrefs = mocks.NewMockPreferenceServiceInterface(suite.ctrl)
	suite.handler = handlers.NewPreferenceHandler(suite.mockPrefs)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.GET("/preferences", suite.handler.GetPreferences)
	suite.httpSuite.Router.PUT("/preferences", suite.handler.PutPreferences)
	suite.httpSuite.Router.DELETE("/preferences", suite.handler.DeletePreferences)
}

func (suite *PreferenceHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PreferenceHandlerTestSuite) TestGetPreferences_ReturnsResolvedPreferences() {
	suite.mockPrefs.EXPECT().Load().Return(service.Preferences{
		Search:    "acme",
		Status:    string(models.LeadStatusNew),
		SortBy:    models.SortByName,
		SortOrder: models.SortAsc,
		Limit:     25,
	})

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/preferences", nil)

	var got service.Preferences
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Equal(suite.T(), "acme", got.Search)
	assert.Equal(suite.T(), 25, got.Limit)
}

func (suite *PreferenceHandlerTestSuite) TestPutPreferences_SavesAndReturnsStoredState() {
	saved := service.Preferences{
		Search:    "jane",
		Status:    string(models.LeadStatusQualified),
		SortBy:    models.SortByScore,
		SortOrder: models.SortDesc,
		Limit:     10,
	}
	suite.mockPrefs.EXPECT().Save(saved)
	suite.mockPrefs.EXPECT().Load().Return(saved)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/preferences", saved)

	var got service.Preferences
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Equal(suite.T(), saved, got)
}

func (suite *PreferenceHandlerTestSuite) TestPutPreferences_MalformedBody_BadRequest() {
	// A raw string marshals to a JSON string, not a Preferences object
	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/preferences", "not-an-object")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid request body")
}

func (suite *PreferenceHandlerTestSuite) TestDeletePreferences_NoContent() {
	suite.mockPrefs.EXPECT().Clear()

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/preferences", nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func TestPreferenceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PreferenceHandlerTestSuite))
}
