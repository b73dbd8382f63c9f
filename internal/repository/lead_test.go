//go:build integration
// +build integration

package repository

import (
	"testing"

	"sales-portal-backend/internal/database/models"
	apperrors "sales-portal-backend/internal/errors"
	"sales-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// LeadRepositoryTestSuite tests the LeadRepository
type LeadRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LeadRepository
}

// SetupSuite runs before all tests in the suite
func (suite *LeadRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewLeadRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *LeadRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *LeadRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *LeadRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a lead directly via gorm
func (suite *LeadRepositoryTestSuite) createLead(lead *models.Lead) *models.Lead {
	err := suite.baseTestSuite.DB.Create(lead).Error
	suite.NoError(err)
	return lead
}

func (suite *LeadRepositoryTestSuite) TestGetByID() {
	factory := testutils.NewLeadFactory()
	lead := suite.createLead(factory.Create())

	retrieved, err := suite.repo.GetByID(lead.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(lead.ID, retrieved.ID)
	suite.Equal(lead.Name, retrieved.Name)
	suite.Equal(lead.Company, retrieved.Company)
	suite.Equal(lead.Status, retrieved.Status)
}

func (suite *LeadRepositoryTestSuite) TestGetByIDNotFound() {
	lead, err := suite.repo.GetByID("no-such-id")

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrLeadNotFound)
	suite.Nil(lead)
}

func (suite *LeadRepositoryTestSuite) TestListWholeCollection() {
	factory := testutils.NewLeadFactory()
	for _, lead := range factory.CreateBatch(5) {
		suite.createLead(lead)
	}

	leads, total, err := suite.repo.List(LeadFilter{
		SortBy:    models.SortByScore,
		SortOrder: models.SortDesc,
	})

	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(leads, 5)

	// Score descending
	for i := 1; i < len(leads); i++ {
		suite.GreaterOrEqual(leads[i-1].Score, leads[i].Score)
	}
}

func (suite *LeadRepositoryTestSuite) TestListStatusFilter() {
	factory := testutils.NewLeadFactory()
	suite.createLead(factory.WithStatus(models.LeadStatusNew))
	suite.createLead(factory.WithStatus(models.LeadStatusQualified))
	suite.createLead(factory.WithStatus(models.LeadStatusQualified))

	leads, total, err := suite.repo.List(LeadFilter{
		Status:    string(models.LeadStatusQualified),
		SortBy:    models.SortByScore,
		SortOrder: models.SortDesc,
	})

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(leads, 2)
	for _, lead := range leads {
		suite.Equal(models.LeadStatusQualified, lead.Status)
	}
}

func (suite *LeadRepositoryTestSuite) TestListAllStatusMatchesEverything() {
	factory := testutils.NewLeadFactory()
	suite.createLead(factory.WithStatus(models.LeadStatusNew))
	suite.createLead(factory.WithStatus(models.LeadStatusContacted))

	_, total, err := suite.repo.List(LeadFilter{
		Status:    models.StatusAll,
		SortBy:    models.SortByScore,
		SortOrder: models.SortDesc,
	})

	suite.NoError(err)
	suite.Equal(int64(2), total)
}

func (suite *LeadRepositoryTestSuite) TestListPagination() {
	factory := testutils.NewLeadFactory()
	for _, lead := range factory.CreateBatch(7) {
		suite.createLead(lead)
	}

	// Second page of three
	leads, total, err := suite.repo.List(LeadFilter{
		SortBy:    models.SortByScore,
		SortOrder: models.SortDesc,
		Limit:     3,
		Offset:    3,
	})

	suite.NoError(err)
	// The total covers the whole filtered collection, not the page
	suite.Equal(int64(7), total)
	suite.Len(leads, 3)

	// Last page is short
	leads, total, err = suite.repo.List(LeadFilter{
		SortBy:    models.SortByScore,
		SortOrder: models.SortDesc,
		Limit:     3,
		Offset:    6,
	})
	suite.NoError(err)
	suite.Equal(int64(7), total)
	suite.Len(leads, 1)
}

func (suite *LeadRepositoryTestSuite) TestListSortWhitelistFallback() {
	factory := testutils.NewLeadFactory()
	suite.createLead(factory.WithScore(10))
	suite.createLead(factory.WithScore(90))

	// An unknown sort column must not reach the database
	leads, _, err := suite.repo.List(LeadFilter{
		SortBy:    models.SortField("id; DROP TABLE leads"),
		SortOrder: models.SortOrder("sideways"),
	})

	suite.NoError(err)
	suite.Len(leads, 2)
	// Fallback is score descending
	suite.Equal(90, leads[0].Score)
	suite.Equal(10, leads[1].Score)
}

func (suite *LeadRepositoryTestSuite) TestListSortByNameAscending() {
	factory := testutils.NewLeadFactory()
	suite.createLead(factory.WithName("Charlie Baker"))
	suite.createLead(factory.WithName("Alice Dunn"))
	suite.createLead(factory.WithName("Bob Evans"))

	leads, _, err := suite.repo.List(LeadFilter{
		SortBy:    models.SortByName,
		SortOrder: models.SortAsc,
	})

	suite.NoError(err)
	suite.Len(leads, 3)
	suite.Equal("Alice Dunn", leads[0].Name)
	suite.Equal("Bob Evans", leads[1].Name)
	suite.Equal("Charlie Baker", leads[2].Name)
}

func (suite *LeadRepositoryTestSuite) TestPatch() {
	factory := testutils.NewLeadFactory()
	lead := suite.createLead(factory.Create())

	updated, err := suite.repo.Patch(lead.ID, map[string]interface{}{
		"email":  "changed@acme.test",
		"status": models.LeadStatusQualified,
	})

	suite.NoError(err)
	suite.Equal("changed@acme.test", updated.Email)
	suite.Equal(models.LeadStatusQualified, updated.Status)
	// Untouched fields survive
	suite.Equal(lead.Name, updated.Name)
	suite.Equal(lead.Score, updated.Score)
}

func (suite *LeadRepositoryTestSuite) TestPatchEmptyUpdates() {
	factory := testutils.NewLeadFactory()
	lead := suite.createLead(factory.Create())

	updated, err := suite.repo.Patch(lead.ID, map[string]interface{}{})

	suite.NoError(err)
	suite.Equal(lead.Email, updated.Email)
}

func (suite *LeadRepositoryTestSuite) TestPatchNotFound() {
	updated, err := suite.repo.Patch("no-such-id", map[string]interface{}{
		"email": "x@y.test",
	})

	suite.ErrorIs(err, apperrors.ErrLeadNotFound)
	suite.Nil(updated)
}

func (suite *LeadRepositoryTestSuite) TestCreateAssignsIDWhenMissing() {
	lead := &models.Lead{
		Name:    "No ID Lead",
		Company: "Acme Corp",
		Email:   "noid@acme.test",
		Score:   50,
		Status:  models.LeadStatusNew,
	}

	err := suite.repo.Create(lead)

	suite.NoError(err)
	suite.NotEmpty(lead.ID)
}

func TestLeadRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LeadRepositoryTestSuite))
}
