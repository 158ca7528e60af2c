package components

import (
	"volunteer-hub/internal/infra/db"
	"volunteer-hub/internal/infra/readstore"
	"volunteer-hub/internal/infra/uow"
	"volunteer-hub/internal/usecase/commands"
	"volunteer-hub/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewOpportunityReadStore,
			fx.As(new(queries.OpportunityViewRepo)),
		),
		fx.Annotate(
			readstore.NewApplicationReadStore,
			fx.As(new(queries.ApplicationViewRepo)),
		),
		fx.Annotate(
			readstore.NewRewardReadStore,
			fx.As(new(queries.RewardViewRepo)),
		),
		fx.Annotate(
			readstore.NewRedemptionReadStore,
			fx.As(new(queries.RedemptionViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(commands.LastLoginRecorder)),
		),
		fx.Annotate(
			readstore.NewSweepReadStore,
			fx.As(new(commands.SweepSource)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
