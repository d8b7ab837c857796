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

import "github.com/ecodeclub/ekit/sqlx"

type Entry struct {
	Pid      int64  `json:"pid" bson:"pid"`
	Platform string `json:"platform" bson:"platform"`
	Status   string `json:"status" bson:"status"`
	Time     int64  `json:"time" bson:"time"`
}

type Category struct {
	Tag   string `json:"tag" bson:"tag"`
	Count int64  `json:"count" bson:"count"`
}

type HeatmapBucket struct {
	Date string `json:"date" bson:"date"`
	Subs int64  `json:"subs" bson:"subs"`
}

type Contest struct {
	Name   string `json:"name" bson:"name"`
	Rating int64  `json:"rating" bson:"rating"`
	Rank   int64  `json:"rank" bson:"rank"`
	Date   int64  `json:"date" bson:"date"`
	URL    string `json:"url" bson:"url"`
}

type UserLedger struct {
	Uid     int64                     `gorm:"primaryKey;autoIncrement:false"`
	Entries sqlx.JsonColumn[[]Entry] `gorm:"type:json"`
	// LastUpdated 拉取截止时间，毫秒
	LastUpdated int64
	Ctime       int64
	Utime       int64
}

type PlatformProfile struct {
	Id         int64                             `gorm:"primaryKey,autoIncrement"`
	Uid        int64                             `gorm:"uniqueIndex:uid_platform"`
	Platform   string                            `gorm:"type:varchar(64);uniqueIndex:uid_platform;index:platform_handle"`
	Handle     string                            `gorm:"type:varchar(256);index:platform_handle"`
	Solved     int64
	Total      int64
	Categories sqlx.JsonColumn[[]Category]      `gorm:"type:json"`
	Heatmap    sqlx.JsonColumn[[]HeatmapBucket] `gorm:"type:json"`
	Contests   sqlx.JsonColumn[[]Contest]       `gorm:"type:json"`
	Ctime      int64
	Utime      int64
}

// Bundle 不是表，一个用户的台账和各平台统计，总是整体读写
type Bundle struct {
	Ledger   UserLedger
	Profiles []PlatformProfile
}
