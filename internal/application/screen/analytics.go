package screen

import (
	"context"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/listing"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/navigation"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
)

// Analytics analítica global de la plataforma.
type Analytics struct {
	env  *Env
	Data listing.Resource[*entity.Analytics]
}

func NewAnalytics(env *Env) *Analytics { return &Analytics{env: env} }

func (s *Analytics) View() navigation.View   { return navigation.Analytics }
func (s *Analytics) Parent() navigation.View { return navigation.Dashboard }
func (s *Analytics) Leave()                  { s.Data.Cancel() }

func (s *Analytics) Mount() listing.Pending {
	api := s.env.API
	return listing.Fetch(s.env.Ctx, &s.Data, func(ctx context.Context) (*entity.Analytics, error) {
		return api.Analytics(ctx)
	}, s.env.failer("load analytics"))
}
