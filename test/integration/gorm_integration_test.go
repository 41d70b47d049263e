package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"bloom-be/internal/entity"
	"bloom-be/internal/repository/unitofwork"
	"bloom-be/pkg/database"
	"bloom-be/pkg/questionnaire"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}
	return unitofwork.NewRepositoryFactory(gormDB)
}

func createTestUser(t *testing.T, uow unitofwork.UnitOfWork) *entity.User {
	t.Helper()

	user := &entity.User{
		Id:       uuid.New(),
		Email:    "test-integration-" + uuid.New().String() + "@example.com",
		FullName: "Integration Test User",
		Role:     entity.UserRoleMember,
		Status:   entity.UserStatusActive,
	}
	require.NoError(t, uow.UserRepository().Create(context.Background(), user))
	return user
}

func TestGormConnection(t *testing.T) {
	uowFactory := openTestDB(t)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.AnswerRepository())

	t.Run("Check Question Catalog", func(t *testing.T) {
		catalog, err := uow.QuestionRepository().FindCatalog(context.Background())
		assert.NoError(t, err)
		t.Logf("Catalog size: %d", len(catalog))
	})
}

func TestAnswerUpsertIdempotence(t *testing.T) {
	uowFactory := openTestDB(t)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	user := createTestUser(t, uow)
	answers := uow.AnswerRepository()

	answer := &entity.Answer{
		UserId:      user.Id,
		QuestionKey: "mbti_type",
		Value:       questionnaire.ChoiceValue("INFP"),
	}

	// Same value twice: still one row per (user, question) pair
	require.NoError(t, answers.Upsert(ctx, answer))
	require.NoError(t, answers.Upsert(ctx, answer))

	count, err := answers.CountByUser(ctx, user.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	t.Run("Edit Flow Readback", func(t *testing.T) {
		// Edit surface overwrites in place; readback reflects the new
		// value without any reload step.
		edited := &entity.Answer{
			UserId:      user.Id,
			QuestionKey: "mbti_type",
			Value:       questionnaire.ChoiceValue("ENFP"),
		}
		require.NoError(t, answers.Upsert(ctx, edited))

		got, err := answers.FindByUserAndKey(ctx, user.Id, "mbti_type")
		require.NoError(t, err)
		assert.Equal(t, questionnaire.KindChoice, got.Value.Kind)
		assert.Equal(t, "ENFP", got.Value.Choice)

		count, err := answers.CountByUser(ctx, user.Id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestPhotoOrdering(t *testing.T) {
	uowFactory := openTestDB(t)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	user := createTestUser(t, uow)

	profile := &entity.Profile{
		Id:     uuid.New(),
		UserId: user.Id,
		Status: entity.ProfileStatusIncomplete,
	}
	require.NoError(t, uow.ProfileRepository().Create(ctx, profile))

	photos := uow.PhotoRepository()
	third := &entity.ProfilePhoto{Id: uuid.New(), ProfileId: profile.Id, URL: "/uploads/c.jpg", OrderIndex: 2}
	primary := &entity.ProfilePhoto{Id: uuid.New(), ProfileId: profile.Id, URL: "/uploads/b.jpg", OrderIndex: 1, IsPrimary: true}
	first := &entity.ProfilePhoto{Id: uuid.New(), ProfileId: profile.Id, URL: "/uploads/a.jpg", OrderIndex: 0}

	for _, p := range []*entity.ProfilePhoto{third, primary, first} {
		require.NoError(t, photos.Create(ctx, p))
	}

	// Primary first, then order_index ascending
	listed, err := photos.FindByProfile(ctx, profile.Id)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, primary.Id, listed[0].Id)
	assert.Equal(t, first.Id, listed[1].Id)
	assert.Equal(t, third.Id, listed[2].Id)

	count, err := photos.CountByProfile(ctx, profile.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
