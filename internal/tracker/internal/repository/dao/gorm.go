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

package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GORMBundleDAO struct {
	db *egorm.Component
}

func NewGORMBundleDAO(db *egorm.Component) BundleDAO {
	return &GORMBundleDAO{db: db}
}

func (g *GORMBundleDAO) Find(ctx context.Context, uid int64) (Bundle, error) {
	res := Bundle{Ledger: UserLedger{Uid: uid}}
	db := g.db.WithContext(ctx)
	err := db.Where("uid = ?", uid).First(&res.Ledger).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return Bundle{}, err
	}
	err = db.Where("uid = ?", uid).Order("id ASC").Find(&res.Profiles).Error
	return res, err
}

func (g *GORMBundleDAO) FindByUids(ctx context.Context, uids []int64) ([]Bundle, error) {
	var (
		ledgers  []UserLedger
		profiles []PlatformProfile
	)
	db := g.db.WithContext(ctx)
	err := db.Where("uid IN ?", uids).Find(&ledgers).Error
	if err != nil {
		return nil, err
	}
	err = db.Where("uid IN ?", uids).Order("id ASC").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return assemble(uids, ledgers, profiles), nil
}

func (g *GORMBundleDAO) Save(ctx context.Context, b Bundle) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b.Ledger.Ctime = now
		b.Ledger.Utime = now
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "uid"}},
			DoUpdates: clause.AssignmentColumns([]string{"entries", "last_updated", "utime"}),
		}).Create(&b.Ledger).Error
		if err != nil {
			return err
		}
		for i := range b.Profiles {
			p := b.Profiles[i]
			p.Id = 0
			p.Uid = b.Ledger.Uid
			p.Ctime = now
			p.Utime = now
			err = tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "uid"}, {Name: "platform"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"handle", "solved", "total", "categories", "heatmap", "contests", "utime",
				}),
			}).Create(&p).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (g *GORMBundleDAO) ListHandles(ctx context.Context, platform string, offset, limit int) ([]PlatformProfile, error) {
	var res []PlatformProfile
	err := g.db.WithContext(ctx).
		Where("platform = ? AND handle <> ''", platform).
		Order("uid ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMBundleDAO) SearchHandles(ctx context.Context, keyword string, limit int) ([]PlatformProfile, error) {
	var res []PlatformProfile
	// 默认的 utf8mb4_general_ci 排序规则下 LIKE 本身不区分大小写
	err := g.db.WithContext(ctx).
		Select("id", "uid", "platform", "handle").
		Where("handle LIKE ?", "%"+likeEscaper.Replace(keyword)+"%").
		Order("uid ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// assemble 按照 uids 的顺序组装，没有数据的用户给一个空的 Bundle
func assemble(uids []int64, ledgers []UserLedger, profiles []PlatformProfile) []Bundle {
	idx := make(map[int64]int, len(uids))
	res := make([]Bundle, 0, len(uids))
	for _, uid := range uids {
		if _, ok := idx[uid]; ok {
			continue
		}
		idx[uid] = len(res)
		res = append(res, Bundle{Ledger: UserLedger{Uid: uid}})
	}
	for _, l := range ledgers {
		if i, ok := idx[l.Uid]; ok {
			res[i].Ledger = l
		}
	}
	for _, p := range profiles {
		if i, ok := idx[p.Uid]; ok {
			res[i].Profiles = append(res[i].Profiles, p)
		}
	}
	return res
}
