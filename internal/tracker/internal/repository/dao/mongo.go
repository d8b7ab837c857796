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
	"regexp"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const bundleCollection = "bundles"

type bundleDocument struct {
	Uid         int64             `bson:"_id"`
	Entries     []Entry           `bson:"entries"`
	LastUpdated int64             `bson:"last_updated"`
	Profiles    []profileDocument `bson:"profiles"`
	Ctime       int64             `bson:"ctime"`
	Utime       int64             `bson:"utime"`
}

type profileDocument struct {
	Platform   string          `bson:"platform"`
	Handle     string          `bson:"handle"`
	Solved     int64           `bson:"solved"`
	Total      int64           `bson:"total"`
	Categories []Category      `bson:"categories"`
	Heatmap    []HeatmapBucket `bson:"heatmap"`
	Contests   []Contest       `bson:"contests"`
}

// MongoBundleDAO 一个用户一个文档
type MongoBundleDAO struct {
	bundles *mongo.Collection
}

func NewMongoBundleDAO(db *mongo.Database) BundleDAO {
	return &MongoBundleDAO{
		bundles: db.Collection(bundleCollection),
	}
}

func (m *MongoBundleDAO) Find(ctx context.Context, uid int64) (Bundle, error) {
	var doc bundleDocument
	err := m.bundles.FindOne(ctx, bson.M{"_id": uid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Bundle{Ledger: UserLedger{Uid: uid}}, nil
	}
	if err != nil {
		return Bundle{}, err
	}
	return m.toBundle(doc), nil
}

func (m *MongoBundleDAO) FindByUids(ctx context.Context, uids []int64) ([]Bundle, error) {
	cursor, err := m.bundles.Find(ctx, bson.M{"_id": bson.M{"$in": uids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []bundleDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	var (
		ledgers  []UserLedger
		profiles []PlatformProfile
	)
	for _, doc := range docs {
		b := m.toBundle(doc)
		ledgers = append(ledgers, b.Ledger)
		profiles = append(profiles, b.Profiles...)
	}
	return assemble(uids, ledgers, profiles), nil
}

func (m *MongoBundleDAO) Save(ctx context.Context, b Bundle) error {
	now := time.Now().UnixMilli()
	doc := m.toDocument(b)
	doc.Utime = now
	_, err := m.bundles.UpdateOne(ctx, bson.M{"_id": doc.Uid}, bson.M{
		"$set": bson.M{
			"entries":      doc.Entries,
			"last_updated": doc.LastUpdated,
			"profiles":     doc.Profiles,
			"utime":        doc.Utime,
		},
		"$setOnInsert": bson.M{"ctime": now},
	}, options.Update().SetUpsert(true))
	return err
}

func (m *MongoBundleDAO) ListHandles(ctx context.Context, platform string, offset, limit int) ([]PlatformProfile, error) {
	filter := bson.M{
		"profiles": bson.M{"$elemMatch": bson.M{
			"platform": platform,
			"handle":   bson.M{"$ne": ""},
		}},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cursor, err := m.bundles.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []bundleDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	res := make([]PlatformProfile, 0, len(docs))
	for _, doc := range docs {
		p, ok := slice.Find(doc.Profiles, func(src profileDocument) bool {
			return src.Platform == platform
		})
		if ok {
			res = append(res, m.toProfile(doc.Uid, p))
		}
	}
	return res, nil
}

func (m *MongoBundleDAO) SearchHandles(ctx context.Context, keyword string, limit int) ([]PlatformProfile, error) {
	pattern := regexp.QuoteMeta(keyword)
	filter := bson.M{"profiles.handle": bson.M{"$regex": pattern, "$options": "i"}}
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(int64(limit))
	cursor, err := m.bundles.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []bundleDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	re := regexp.MustCompile("(?i)" + pattern)
	res := make([]PlatformProfile, 0, len(docs))
	for _, doc := range docs {
		for _, p := range doc.Profiles {
			if p.Handle != "" && re.MatchString(p.Handle) {
				res = append(res, m.toProfile(doc.Uid, p))
			}
		}
	}
	return res, nil
}

func (m *MongoBundleDAO) toBundle(doc bundleDocument) Bundle {
	return Bundle{
		Ledger: UserLedger{
			Uid: doc.Uid,
			Entries: sqlx.JsonColumn[[]Entry]{
				Val:   doc.Entries,
				Valid: len(doc.Entries) != 0,
			},
			LastUpdated: doc.LastUpdated,
			Ctime:       doc.Ctime,
			Utime:       doc.Utime,
		},
		Profiles: slice.Map(doc.Profiles, func(idx int, src profileDocument) PlatformProfile {
			return m.toProfile(doc.Uid, src)
		}),
	}
}

func (m *MongoBundleDAO) toProfile(uid int64, p profileDocument) PlatformProfile {
	return PlatformProfile{
		Uid:        uid,
		Platform:   p.Platform,
		Handle:     p.Handle,
		Solved:     p.Solved,
		Total:      p.Total,
		Categories: sqlx.JsonColumn[[]Category]{Val: p.Categories, Valid: len(p.Categories) != 0},
		Heatmap:    sqlx.JsonColumn[[]HeatmapBucket]{Val: p.Heatmap, Valid: len(p.Heatmap) != 0},
		Contests:   sqlx.JsonColumn[[]Contest]{Val: p.Contests, Valid: len(p.Contests) != 0},
	}
}

func (m *MongoBundleDAO) toDocument(b Bundle) bundleDocument {
	return bundleDocument{
		Uid:         b.Ledger.Uid,
		Entries:     b.Ledger.Entries.Val,
		LastUpdated: b.Ledger.LastUpdated,
		Profiles: slice.Map(b.Profiles, func(idx int, src PlatformProfile) profileDocument {
			return profileDocument{
				Platform:   src.Platform,
				Handle:     src.Handle,
				Solved:     src.Solved,
				Total:      src.Total,
				Categories: src.Categories.Val,
				Heatmap:    src.Heatmap.Val,
				Contests:   src.Contests.Val,
			}
		}),
	}
}
