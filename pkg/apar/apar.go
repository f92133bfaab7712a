package apar

import (
	"context"
	"time"

	"liyu1981.xyz/apar-inspection-service/pkg/db"
	"liyu1981.xyz/apar-inspection-service/pkg/models"
)

//go:generate mockgen -source=apar.go -destination=mocks/mock_apar.go -package=mocks

type IAsset interface {
	Create(ctx context.Context, actor models.Actor, input models.AparInput) (*models.Apar, error)
	Update(ctx context.Context, actor models.Actor, id uint, input models.AparInput) (*models.Apar, error)
	Delete(ctx context.Context, actor models.Actor, id uint) error
	Get(ctx context.Context, id uint) (*models.Apar, error)
	List(ctx context.Context, opts models.ListOptions) (models.Page[models.Apar], error)
}

type IInspection interface {
	Create(ctx context.Context, actor models.Actor, input models.InspectionInput) (*models.Inspection, error)
	Update(ctx context.Context, actor models.Actor, id uint, input models.InspectionInput) (*models.Inspection, error)
	Delete(ctx context.Context, actor models.Actor, id uint) error
	Get(ctx context.Context, id uint, withItems bool) (*models.Inspection, error)
	List(ctx context.Context, filter models.InspectionFilter, opts models.ListOptions) (models.Page[models.Inspection], error)
}

type IReport interface {
	AssetStatusSummary(ctx context.Context) (models.AssetStatusSummary, error)
	UserInspectionCounts(ctx context.Context) ([]models.UserInspectionCount, error)
	AssetInspectionStats(ctx context.Context) ([]models.AssetInspectionStat, error)
	InspectionPassRates(ctx context.Context) ([]models.InspectionPassRate, error)
	AssetsByLocation(ctx context.Context) ([]models.LocationCount, error)
	MonthlyInspectionCounts(ctx context.Context, year int) ([]models.MonthlyCount, error)
	ExpiryWindow(ctx context.Context) (models.ExpiryWindow, error)
	RecentInspections(ctx context.Context, limit int) ([]models.Inspection, error)
	AdminDashboard(ctx context.Context) (*models.AdminDashboard, error)
	UserDashboard(ctx context.Context) (*models.UserDashboard, error)
}

type IUser interface {
	Create(ctx context.Context, actor models.Actor, input models.UserInput) (*models.User, error)
	Update(ctx context.Context, actor models.Actor, id uint, input models.UserInput) (*models.User, error)
	Delete(ctx context.Context, actor models.Actor, id uint) error
	Get(ctx context.Context, id uint) (*models.User, error)
	List(ctx context.Context, opts models.ListOptions) (models.Page[models.User], error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	Count(ctx context.Context) (int64, error)
}

// APAR is the core: it owns the database handle and composes the services
// that read and write it. Transports only talk to the interfaces.
type APAR struct {
	Db         db.DB
	Asset      IAsset
	Inspection IInspection
	Report     IReport
	User       IUser

	// Now is the clock used by reports; nil means time.Now.
	Now func() time.Time
}

type ServiceOpts struct {
	Asset      IAsset
	Inspection IInspection
	Report     IReport
	User       IUser
}

// New builds a core with the default service implementations.
func New(database db.DB) *APAR {
	a := &APAR{Db: database}
	return a.WithServices(ServiceOpts{
		Asset:      a.GetIAsset(),
		Inspection: a.GetIInspection(),
		Report:     a.GetIReport(),
		User:       a.GetIUser(),
	})
}

func (a *APAR) WithServices(opts ServiceOpts) *APAR {
	if opts.Asset != nil {
		a.Asset = opts.Asset
	}
	if opts.Inspection != nil {
		a.Inspection = opts.Inspection
	}
	if opts.Report != nil {
		a.Report = opts.Report
	}
	if opts.User != nil {
		a.User = opts.User
	}
	return a
}

func (a *APAR) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// CurrentTime is the core's clock, exposed so transports flag expiry against
// the same instant the reports use.
func (a *APAR) CurrentTime() time.Time {
	return a.now()
}
