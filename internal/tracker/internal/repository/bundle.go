// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/algoknight/internal/tracker/internal/domain"
	"github.com/ecodeclub/algoknight/internal/tracker/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
)

//go:generate mockgen -source=./bundle.go -destination=../../mocks/bundle.mock.go -package=trackermocks BundleRepository
type BundleRepository interface {
	Find(ctx context.Context, uid int64) (domain.Bundle, error)
	FindByUids(ctx context.Context, uids []int64) ([]domain.Bundle, error)
	Save(ctx context.Context, b domain.Bundle) error
	ListHandles(ctx context.Context, platform domain.Platform, offset, limit int) ([]domain.Handle, error)
	SearchHandles(ctx context.Context, keyword string, limit int) ([]domain.Handle, error)
}

type bundleRepository struct {
	dao dao.BundleDAO
}

func NewBundleRepository(d dao.BundleDAO) BundleRepository {
	return &bundleRepository{dao: d}
}

func (r *bundleRepository) Find(ctx context.Context, uid int64) (domain.Bundle, error) {
	b, err := r.dao.Find(ctx, uid)
	if err != nil {
		return domain.Bundle{}, err
	}
	return r.toDomain(b), nil
}

func (r *bundleRepository) FindByUids(ctx context.Context, uids []int64) ([]domain.Bundle, error) {
	if len(uids) == 0 {
		return []domain.Bundle{}, nil
	}
	bs, err := r.dao.FindByUids(ctx, uids)
	if err != nil {
		return nil, err
	}
	return slice.Map(bs, func(idx int, src dao.Bundle) domain.Bundle {
		return r.toDomain(src)
	}), nil
}

func (r *bundleRepository) Save(ctx context.Context, b domain.Bundle) error {
	return r.dao.Save(ctx, r.toEntity(b))
}

func (r *bundleRepository) ListHandles(ctx context.Context, platform domain.Platform, offset, limit int) ([]domain.Handle, error) {
	ps, err := r.dao.ListHandles(ctx, platform.ToString(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, r.toHandle), nil
}

func (r *bundleRepository) SearchHandles(ctx context.Context, keyword string, limit int) ([]domain.Handle, error) {
	ps, err := r.dao.SearchHandles(ctx, keyword, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, r.toHandle), nil
}

func (r *bundleRepository) toHandle(idx int, src dao.PlatformProfile) domain.Handle {
	return domain.Handle{
		Uid:      src.Uid,
		Platform: domain.Platform(src.Platform),
		Handle:   src.Handle,
	}
}

func (r *bundleRepository) toDomain(b dao.Bundle) domain.Bundle {
	return domain.Bundle{
		Uid: b.Ledger.Uid,
		Ledger: domain.Ledger{
			Entries: slice.Map(b.Ledger.Entries.Val, func(idx int, src dao.Entry) domain.LedgerEntry {
				return domain.LedgerEntry{
					Pid:      src.Pid,
					Platform: domain.Platform(src.Platform),
					Status:   domain.Status(src.Status),
					Time:     time.UnixMilli(src.Time),
				}
			}),
			LastUpdated: time.UnixMilli(b.Ledger.LastUpdated),
		},
		Profiles: slice.Map(b.Profiles, func(idx int, src dao.PlatformProfile) domain.PlatformProfile {
			return r.profileToDomain(src)
		}),
	}
}

func (r *bundleRepository) profileToDomain(p dao.PlatformProfile) domain.PlatformProfile {
	return domain.PlatformProfile{
		Platform: domain.Platform(p.Platform),
		Handle:   p.Handle,
		Solved:   p.Solved,
		Total:    p.Total,
		Categories: slice.Map(p.Categories.Val, func(idx int, src dao.Category) domain.Category {
			return domain.Category{Tag: src.Tag, Count: src.Count}
		}),
		Heatmap: slice.Map(p.Heatmap.Val, func(idx int, src dao.HeatmapBucket) domain.HeatmapBucket {
			return domain.HeatmapBucket{Date: src.Date, Subs: src.Subs}
		}),
		Contests: slice.Map(p.Contests.Val, func(idx int, src dao.Contest) domain.Contest {
			return domain.Contest{
				Name:   src.Name,
				Rating: src.Rating,
				Rank:   src.Rank,
				Date:   time.UnixMilli(src.Date),
				URL:    src.URL,
			}
		}),
	}
}

func (r *bundleRepository) toEntity(b domain.Bundle) dao.Bundle {
	entries := slice.Map(b.Ledger.Entries, func(idx int, src domain.LedgerEntry) dao.Entry {
		return dao.Entry{
			Pid:      src.Pid,
			Platform: src.Platform.ToString(),
			Status:   src.Status.ToString(),
			Time:     src.Time.UnixMilli(),
		}
	})
	return dao.Bundle{
		Ledger: dao.UserLedger{
			Uid:         b.Uid,
			Entries:     sqlx.JsonColumn[[]dao.Entry]{Val: entries, Valid: true},
			LastUpdated: b.Ledger.LastUpdated.UnixMilli(),
		},
		Profiles: slice.Map(b.Profiles, func(idx int, src domain.PlatformProfile) dao.PlatformProfile {
			return r.profileToEntity(b.Uid, src)
		}),
	}
}

func (r *bundleRepository) profileToEntity(uid int64, p domain.PlatformProfile) dao.PlatformProfile {
	categories := slice.Map(p.Categories, func(idx int, src domain.Category) dao.Category {
		return dao.Category{Tag: src.Tag, Count: src.Count}
	})
	heatmap := slice.Map(p.Heatmap, func(idx int, src domain.HeatmapBucket) dao.HeatmapBucket {
		return dao.HeatmapBucket{Date: src.Date, Subs: src.Subs}
	})
	contests := slice.Map(p.Contests, func(idx int, src domain.Contest) dao.Contest {
		return dao.Contest{
			Name:   src.Name,
			Rating: src.Rating,
			Rank:   src.Rank,
			Date:   src.Date.UnixMilli(),
			URL:    src.URL,
		}
	})
	return dao.PlatformProfile{
		Uid:        uid,
		Platform:   p.Platform.ToString(),
		Handle:     p.Handle,
		Solved:     p.Solved,
		Total:      p.Total,
		Categories: sqlx.JsonColumn[[]dao.Category]{Val: categories, Valid: true},
		Heatmap:    sqlx.JsonColumn[[]dao.HeatmapBucket]{Val: heatmap, Valid: true},
		Contests:   sqlx.JsonColumn[[]dao.Contest]{Val: contests, Valid: true},
	}
}
