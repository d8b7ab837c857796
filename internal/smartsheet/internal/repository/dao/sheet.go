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

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type SmartSheetDAO interface {
	Find(ctx context.Context, uid int64) (SmartSheet, error)
	// Upsert 整体覆盖
	Upsert(ctx context.Context, s SmartSheet) error
}

type GORMSmartSheetDAO struct {
	db *egorm.Component
}

func NewGORMSmartSheetDAO(db *egorm.Component) SmartSheetDAO {
	return &GORMSmartSheetDAO{db: db}
}

func (g *GORMSmartSheetDAO) Find(ctx context.Context, uid int64) (SmartSheet, error) {
	var res SmartSheet
	err := g.db.WithContext(ctx).Where("uid = ?", uid).First(&res).Error
	return res, err
}

func (g *GORMSmartSheetDAO) Upsert(ctx context.Context, s SmartSheet) error {
	s.Ctime = s.Utime
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uid"}},
		DoUpdates: clause.AssignmentColumns([]string{"items", "utime"}),
	}).Create(&s).Error
}
