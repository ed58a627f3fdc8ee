package repository

import (
	"context"
	"testing"
	"time"

	"aeron-recovery-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoRecoveryPlanRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	generatedAt := time.Date(2025, 6, 6, 12, 0, 0, 0, time.UTC)

	mt.Run("save inserts the plan under its id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())
		ctx := context.Background()

		repo, err := NewMongoRecoveryPlanRepository(ctx, mt.DB)
		require.NoError(mt, err)

		err = repo.Save(ctx, &entity.RecoveryPlan{
			PlanID:          "plan-1",
			FlightIDs:       []int{1, 2},
			AffectedFlights: 2,
			GeneratedAt:     generatedAt,
		})
		require.NoError(mt, err)

		assert.Equal(mt, "createIndexes", mt.GetStartedEvent().CommandName)
		insert := mt.GetStartedEvent()
		require.NotNil(mt, insert)
		assert.Equal(mt, "insert", insert.CommandName)
		doc := insert.Command.Lookup("documents").Array().Index(0).Value().Document()
		assert.Equal(mt, "plan-1", doc.Lookup("_id").StringValue())
		assert.Equal(mt, int32(2), doc.Lookup("affectedFlights").Int32())
	})

	mt.Run("find recent decodes plans", func(mt *mtest.T) {
		ns := mt.DB.Name() + ".recovery_plans"
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
				{Key: "_id", Value: "plan-7"},
				{Key: "flightIds", Value: bson.A{3, 5}},
				{Key: "affectedFlights", Value: 2},
				{Key: "totalPassengers", Value: 0},
				{Key: "estimatedRecoveryTime", Value: "4-6 hours"},
				{Key: "options", Value: bson.A{
					bson.D{{Key: "id", Value: 1}, {Key: "type", Value: "Aircraft Substitution"}},
				}},
				{Key: "generatedAt", Value: primitive.NewDateTimeFromTime(generatedAt)},
			}),
		)
		ctx := context.Background()

		repo, err := NewMongoRecoveryPlanRepository(ctx, mt.DB)
		require.NoError(mt, err)

		plans, err := repo.FindRecent(ctx, 5)
		require.NoError(mt, err)
		require.Len(mt, plans, 1)

		plan := plans[0]
		assert.Equal(mt, "plan-7", plan.PlanID)
		assert.Equal(mt, []int{3, 5}, plan.FlightIDs)
		assert.Equal(mt, 2, plan.AffectedFlights)
		assert.Equal(mt, "4-6 hours", plan.EstimatedRecoveryTime)
		require.Len(mt, plan.Options, 1)
		assert.Equal(mt, "Aircraft Substitution", plan.Options[0].Type)
		assert.True(mt, generatedAt.Equal(plan.GeneratedAt))
	})

	mt.Run("index failure is returned", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized on aeron",
		}))

		_, err := NewMongoRecoveryPlanRepository(context.Background(), mt.DB)

		assert.Error(mt, err)
	})
}
