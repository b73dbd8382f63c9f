package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sales-portal-backend/internal/api/handlers"
	"sales-portal-backend/internal/database/models"
	"sales-portal-backend/internal/mocks"
	"sales-portal-backend/internal/service"
	"sales-portal-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OpportunityHandlerTestSuite defines the test suite for OpportunityHandler
type OpportunityHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockConversion *mocks.MockConversionServiceInterface
	mockLedger     *mocks.MockOpportunityLedgerInterface
	handler        *handlers.OpportunityHandler
	router         *gin.Engine
}

func (suite *OpportunityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockConversion = mocks.NewMockConversionServiceInterface(suite.ctrl)
	suite.mockLedger = mocks.NewMockOpportunityLedgerInterface(suite.ctrl)
	suite.handler = handlers.NewOpportunityHandler(suite.mockConversion, suite.mockLedger)

	suite.router = gin.New()
	suite.router.POST("/opportunities/convert", suite.handler.ConvertLead)
	suite.router.GET("/opportunities", suite.handler.ListOpportunities)
	suite.router.GET("/opportunities/:id", suite.handler.GetOpportunity)
	suite.router.PATCH("/opportunities/:id", suite.handler.UpdateOpportunity)
	suite.router.GET("/leads/:id/opportunity", suite.handler.HasOpportunityForLead)
}

func (suite *OpportunityHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OpportunityHandlerTestSuite) postJSON(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *OpportunityHandlerTestSuite) patchJSON(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *OpportunityHandlerTestSuite) TestConvertLead_Success() {
	amount := 25000.0
	created := &service.Opportunity{
		ID:          "opp-1",
		LeadID:      "lead-1",
		Name:        "Jane Cooper",
		Stage:       models.StageProspecting,
		Amount:      &amount,
		AccountName: "Acme Corp",
	}
	suite.mockConversion.EXPECT().
		Convert("lead-1", "Jane Cooper", "Acme Corp", gomock.Any()).
		Return(service.ConvertResult{OK: true, Opportunity: created})

	w := suite.postJSON("/opportunities/convert",
		`{"leadId":"lead-1","leadName":"Jane Cooper","accountName":"Acme Corp","amount":25000}`)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.ConvertResult
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(suite.T(), got.OK)
	assert.Equal(suite.T(), "opp-1", got.Opportunity.ID)
	assert.Equal(suite.T(), models.StageProspecting, got.Opportunity.Stage)
}

func (suite *OpportunityHandlerTestSuite) TestConvertLead_AlreadyConverted_Conflict() {
	suite.mockConversion.EXPECT().
		Convert("lead-1", "Jane Cooper", "Acme Corp", gomock.Any()).
		Return(service.ConvertResult{OK: false})

	w := suite.postJSON("/opportunities/convert",
		`{"leadId":"lead-1","leadName":"Jane Cooper","accountName":"Acme Corp"}`)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)

	var got service.ConvertResult
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.False(suite.T(), got.OK)
	assert.Nil(suite.T(), got.Opportunity)
}

func (suite *OpportunityHandlerTestSuite) TestConvertLead_MissingFields_BadRequest() {
	w := suite.postJSON("/opportunities/convert", `{"leadId":"lead-1"}`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *OpportunityHandlerTestSuite) TestConvertLead_NegativeAmount_BadRequest() {
	w := suite.postJSON("/opportunities/convert",
		`{"leadId":"lead-1","leadName":"Jane Cooper","accountName":"Acme Corp","amount":-100}`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "amount must not be negative")
}

func (suite *OpportunityHandlerTestSuite) TestListOpportunities_ForwardsFilters() {
	factory := testutils.NewOpportunityFactory()
	opportunities := []service.Opportunity{*factory.Create()}
	suite.mockLedger.EXPECT().
		List(string(models.StageProspecting), "acme").
		Return(opportunities)

	req := httptest.NewRequest(http.MethodGet, "/opportunities?stage=Prospecting&search=acme", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got handlers.OpportunityListResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), 1, got.Total)
	assert.Len(suite.T(), got.Opportunities, 1)
}

func (suite *OpportunityHandlerTestSuite) TestListOpportunities_AllStagePassesThrough() {
	suite.mockLedger.EXPECT().List(models.StatusAll, "").Return([]service.Opportunity{})

	req := httptest.NewRequest(http.MethodGet, "/opportunities?stage=All", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *OpportunityHandlerTestSuite) TestListOpportunities_UnknownStage_BadRequest() {
	req := httptest.NewRequest(http.MethodGet, "/opportunities?stage=Bogus", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "unknown opportunity stage")
}

func (suite *OpportunityHandlerTestSuite) TestGetOpportunity_Success() {
	opp := testutils.NewOpportunityFactory().WithStage(models.StageProposal)
	suite.mockLedger.EXPECT().Get(opp.ID).Return(opp, true)

	req := httptest.NewRequest(http.MethodGet, "/opportunities/"+opp.ID, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.Opportunity
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), opp.ID, got.ID)
	assert.Equal(suite.T(), models.StageProposal, got.Stage)
}

func (suite *OpportunityHandlerTestSuite) TestGetOpportunity_NotFound() {
	suite.mockLedger.EXPECT().Get("missing").Return(nil, false)

	req := httptest.NewRequest(http.MethodGet, "/opportunities/missing", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *OpportunityHandlerTestSuite) TestUpdateOpportunity_Success() {
	stage := models.StageNegotiation
	updated := &service.Opportunity{ID: "opp-1", LeadID: "lead-1", Stage: stage}

	suite.mockLedger.EXPECT().
		Update("opp-1", service.OpportunityPatch{Stage: &stage}).
		Return(true)
	suite.mockLedger.EXPECT().Get("opp-1").Return(updated, true)

	w := suite.patchJSON("/opportunities/opp-1", `{"stage":"Negotiation"}`)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.Opportunity
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), models.StageNegotiation, got.Stage)
}

func (suite *OpportunityHandlerTestSuite) TestUpdateOpportunity_UnknownID_NotFound() {
	suite.mockLedger.EXPECT().
		Update("missing", gomock.Any()).
		Return(false)

	w := suite.patchJSON("/opportunities/missing", `{"amount":5000}`)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *OpportunityHandlerTestSuite) TestUpdateOpportunity_InvalidStage_BadRequest() {
	w := suite.patchJSON("/opportunities/opp-1", `{"stage":"Daydreaming"}`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *OpportunityHandlerTestSuite) TestUpdateOpportunity_NegativeAmount_BadRequest() {
	w := suite.patchJSON("/opportunities/opp-1", `{"amount":-1}`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *OpportunityHandlerTestSuite) TestUpdateOpportunity_RolledBackBeforeRead_NotFound() {
	suite.mockLedger.EXPECT().
		Update("opp-1", gomock.Any()).
		Return(true)
	suite.mockLedger.EXPECT().Get("opp-1").Return(nil, false)

	w := suite.patchJSON("/opportunities/opp-1", `{"amount":5000}`)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *OpportunityHandlerTestSuite) TestHasOpportunityForLead() {
	suite.mockLedger.EXPECT().HasForLead("lead-1").Return(true)

	req := httptest.NewRequest(http.MethodGet, "/leads/lead-1/opportunity", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got map[string]bool
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(suite.T(), got["exists"])
}

func TestOpportunityHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OpportunityHandlerTestSuite))
}
