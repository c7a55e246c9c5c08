package facilityrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lastmile/internal/adapters/out/postgres/facilityrepo"
	"lastmile/internal/core/domain/model/facility"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
)

// FacilityRepositoryIntegrationTestSuite provides integration tests for FacilityRepository
// using PostgreSQL containers to verify database persistence behavior.
type FacilityRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *facilityrepo.GormFacilityRepository
}

func (suite *FacilityRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&facilityrepo.FacilityDTO{}))
}

func (suite *FacilityRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE facilities").Error)

	suite.repository = facilityrepo.NewGormFacilityRepository(suite.db)
}

func (suite *FacilityRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *FacilityRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTripsFacility() {
	ctx := context.Background()

	original := suite.createFacility(42, "Nordstan Lockers", 57.7200, 11.9700)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, 42)
	suite.Require().NoError(err)

	suite.Equal(int64(42), retrieved.ID())
	suite.Equal("Nordstan Lockers", retrieved.Name())
	suite.Equal("Nordstan 5, Gothenburg", retrieved.Address())
	suite.InDelta(57.7200, retrieved.Coordinates().Latitude(), 1e-9)
	suite.InDelta(11.9700, retrieved.Coordinates().Longitude(), 1e-9)
}

func (suite *FacilityRepositoryIntegrationTestSuite) TestAdd_SameDirectoryID_ReplacesRow() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx,
		suite.createFacility(42, "Nordstan Lockers", 57.7200, 11.9700)))

	// A directory re-sync delivers the same id with updated details.
	suite.Require().NoError(suite.repository.Add(ctx,
		suite.createFacility(42, "Nordstan Service Point", 57.7201, 11.9702)))

	retrieved, err := suite.repository.Get(ctx, 42)
	suite.Require().NoError(err)
	suite.Equal("Nordstan Service Point", retrieved.Name())

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 1)
}

func (suite *FacilityRepositoryIntegrationTestSuite) TestGet_NonExistentFacility_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), 404)

	suite.Nil(retrieved)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *FacilityRepositoryIntegrationTestSuite) TestGetAll_ReturnsDirectoryInIDOrder() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx,
		suite.createFacility(44, "Frölunda Torg", 57.6530, 11.9110)))
	suite.Require().NoError(suite.repository.Add(ctx,
		suite.createFacility(42, "Nordstan Lockers", 57.7200, 11.9700)))
	suite.Require().NoError(suite.repository.Add(ctx,
		suite.createFacility(43, "Linnéplatsen", 57.6900, 11.9540)))

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(all, 3)
	suite.Equal(int64(42), all[0].ID())
	suite.Equal(int64(43), all[1].ID())
	suite.Equal(int64(44), all[2].ID())
}

func (suite *FacilityRepositoryIntegrationTestSuite) TestGetAll_EmptyDirectory_ReturnsEmptySlice() {
	all, err := suite.repository.GetAll(context.Background())

	suite.Require().NoError(err)
	suite.Empty(all)
}

func (suite *FacilityRepositoryIntegrationTestSuite) createFacility(
	id int64, name string, latitude, longitude float64,
) *facility.Facility {
	coordinates, err := kernel.NewCoordinates(latitude, longitude)
	suite.Require().NoError(err)

	f, err := facility.NewFacility(id, name, "Nordstan 5, Gothenburg", "+46311234567", coordinates)
	suite.Require().NoError(err)
	return f
}

func TestFacilityRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(FacilityRepositoryIntegrationTestSuite))
}
