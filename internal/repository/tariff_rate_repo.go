package repository

import (
	"context"

	"backend/internal/model"

	"gorm.io/gorm"
)

// TariffQuery is the typed predicate set the catalog can be queried by.
// Empty fields are omitted from the final parameterized query, so callers
// compose exactly the predicates they need without assembling SQL text.
type TariffQuery struct {
	Code                string // exact normalized code
	CodePrefix          string // leading digits, any length
	DescriptionContains string // case-insensitive substring of the description
	Origin              string // ISO country code; expands to origin fallback set
	ZeroAntiDumping     bool   // restrict to rows with no anti-dumping rate
	ShortestFirst       bool   // rank more specific (shorter) descriptions first
	Limit               int
}

type TariffRateRepository interface {
	Create(ctx context.Context, rate *model.TariffRate) error
	Search(ctx context.Context, q TariffQuery) ([]model.TariffRate, error)
	// FindBest returns the most specific row for (code, origin) per the
	// origin resolution policy, or nil when the catalog has no row at all.
	FindBest(ctx context.Context, code, origin string) (*model.TariffRate, error)
}

type tariffRateRepository struct {
	db    *gorm.DB
	blocs BlocTable
}

func NewTariffRateRepository(db *gorm.DB, blocs BlocTable) TariffRateRepository {
	if blocs == nil {
		blocs = DefaultBlocs()
	}
	return &tariffRateRepository{db: db, blocs: blocs}
}

func (r *tariffRateRepository) Create(ctx context.Context, rate *model.TariffRate) error {
	return GetDB(ctx, r.db).Create(rate).Error
}

func (r *tariffRateRepository) Search(ctx context.Context, q TariffQuery) ([]model.TariffRate, error) {
	db := GetDB(ctx, r.db).Model(&model.TariffRate{})

	if q.Code != "" {
		db = db.Where("code = ?", q.Code)
	}
	if q.CodePrefix != "" {
		db = db.Where("code LIKE ?", q.CodePrefix+"%")
	}
	if q.DescriptionContains != "" {
		db = db.Where("description ILIKE ?", "%"+q.DescriptionContains+"%")
	}
	if q.Origin != "" {
		// Origin-specific rows plus every generic fallback the resolution
		// policy may pick from; ranking happens in ResolveRate.
		codes := append([]string{q.Origin}, r.blocs.blocsFor(q.Origin)...)
		codes = append(codes, model.OriginRestOfWorld)
		db = db.Where("origin_country_code IN ? OR origin_country_code IS NULL OR origin_country_code = ''", codes)
	}
	if q.ZeroAntiDumping {
		db = db.Where("anti_dumping_rate = 0")
	}
	if q.ShortestFirst {
		db = db.Order("LENGTH(description) ASC")
	} else {
		db = db.Order("code ASC")
	}
	if q.Limit > 0 {
		db = db.Limit(q.Limit)
	}

	var rows []model.TariffRate
	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *tariffRateRepository) FindBest(ctx context.Context, code, origin string) (*model.TariffRate, error) {
	rows, err := r.Search(ctx, TariffQuery{Code: code, Origin: origin})
	if err != nil {
		return nil, err
	}
	return ResolveRate(rows, origin, r.blocs), nil
}
