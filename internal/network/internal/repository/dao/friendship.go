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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type FriendshipDAO interface {
	// Toggle 返回 true 表示添加，false 表示删除
	Toggle(ctx context.Context, uid, fid int64) (bool, error)
	FindFriendIDs(ctx context.Context, uid int64) ([]int64, error)
}

type GORMFriendshipDAO struct {
	db *egorm.Component
}

func NewGORMFriendshipDAO(db *egorm.Component) FriendshipDAO {
	return &GORMFriendshipDAO{db: db}
}

func (g *GORMFriendshipDAO) Toggle(ctx context.Context, uid, fid int64) (bool, error) {
	added := false
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var f Friendship
		err := tx.Where("uid = ? AND fid = ?", uid, fid).First(&f).Error
		switch {
		case err == nil:
			return tx.Where("id = ?", f.Id).Delete(&Friendship{}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			added = true
			return tx.Create(&Friendship{
				Uid:   uid,
				Fid:   fid,
				Ctime: time.Now().UnixMilli(),
			}).Error
		default:
			return err
		}
	})
	return added, err
}

func (g *GORMFriendshipDAO) FindFriendIDs(ctx context.Context, uid int64) ([]int64, error) {
	var res []int64
	err := g.db.WithContext(ctx).Model(&Friendship{}).
		Where("uid = ?", uid).
		Order("id ASC").
		Pluck("fid", &res).Error
	return res, err
}
