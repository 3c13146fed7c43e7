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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const openingCollection = "job_openings"

type openingDocument struct {
	Id               int64    `bson:"_id"`
	Title            string   `bson:"title"`
	Department       string   `bson:"department"`
	Location         string   `bson:"location"`
	Type             string   `bson:"type"`
	Status           string   `bson:"status"`
	Description      string   `bson:"description"`
	Requirements     []string `bson:"requirements"`
	CandidateCount   int64    `bson:"candidateCount"`
	ShortlistedCount int64    `bson:"shortlistedCount"`
	Ctime            int64    `bson:"ctime"`
	Utime            int64    `bson:"utime"`
}

func newOpeningDocument(o JobOpening) openingDocument {
	return openingDocument{
		Id:               o.Id,
		Title:            o.Title,
		Department:       o.Department,
		Location:         o.Location,
		Type:             o.Type,
		Status:           o.Status,
		Description:      o.Description,
		Requirements:     o.Requirements.Val,
		CandidateCount:   o.CandidateCount,
		ShortlistedCount: o.ShortlistedCount,
		Ctime:            o.Ctime,
		Utime:            o.Utime,
	}
}

func (d openingDocument) toEntity() JobOpening {
	return JobOpening{
		Id:         d.Id,
		Title:      d.Title,
		Department: d.Department,
		Location:   d.Location,
		Type:       d.Type,
		Status:     d.Status,
		Requirements: sqlx.JsonColumn[[]string]{
			Val:   d.Requirements,
			Valid: len(d.Requirements) > 0,
		},
		Description:      d.Description,
		CandidateCount:   d.CandidateCount,
		ShortlistedCount: d.ShortlistedCount,
		Ctime:            d.Ctime,
		Utime:            d.Utime,
	}
}

type MongoOpeningDAO struct {
	col *mongo.Collection
}

func NewMongoOpeningDAO(db *mongo.Database) *MongoOpeningDAO {
	return &MongoOpeningDAO{col: db.Collection(openingCollection)}
}

func (m *MongoOpeningDAO) Create(ctx context.Context, o JobOpening) (int64, error) {
	now := time.Now().UnixMilli()
	o.Ctime = now
	o.Utime = now
	_, err := m.col.InsertOne(ctx, newOpeningDocument(o))
	if err != nil {
		return 0, errors.Wrap(err, "插入职位失败")
	}
	return o.Id, nil
}

func (m *MongoOpeningDAO) FindByID(ctx context.Context, id int64) (JobOpening, error) {
	var doc openingDocument
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return JobOpening{}, ErrRecordNotFound
	}
	if err != nil {
		return JobOpening{}, errors.Wrap(err, "查询职位失败")
	}
	return doc.toEntity(), nil
}

func (m *MongoOpeningDAO) List(ctx context.Context) ([]JobOpening, error) {
	opts := options.Find().SetSort(bson.D{{Key: "ctime", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "查询职位列表失败")
	}
	var docs []openingDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "解析职位列表失败")
	}
	return slice.Map(docs, func(idx int, src openingDocument) JobOpening {
		return src.toEntity()
	}), nil
}

func (m *MongoOpeningDAO) UpdateStatus(ctx context.Context, id int64, status string) error {
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": status, "utime": time.Now().UnixMilli()},
	})
	if err != nil {
		return errors.Wrap(err, "更新职位状态失败")
	}
	if res.MatchedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (m *MongoOpeningDAO) IncrCounters(ctx context.Context, id int64, candidateDelta, shortlistedDelta int64) (bool, error) {
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{
			"candidateCount":   candidateDelta,
			"shortlistedCount": shortlistedDelta,
		},
		"$set": bson.M{"utime": time.Now().UnixMilli()},
	})
	if err != nil {
		return false, errors.Wrap(err, "更新职位计数失败")
	}
	return res.MatchedCount > 0, nil
}

func (m *MongoOpeningDAO) SetCounters(ctx context.Context, id int64, oldCandidates, oldShortlisted, candidates, shortlisted int64) (bool, error) {
	filter := bson.M{
		"_id":              id,
		"candidateCount":   oldCandidates,
		"shortlistedCount": oldShortlisted,
	}
	res, err := m.col.UpdateOne(ctx, filter, bson.M{
		"$set": bson.M{
			"candidateCount":   candidates,
			"shortlistedCount": shortlisted,
			"utime":            time.Now().UnixMilli(),
		},
	})
	if err != nil {
		return false, errors.Wrap(err, "覆盖职位计数失败")
	}
	if res.MatchedCount > 0 {
		return true, nil
	}
	cnt, err := m.col.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, errors.Wrap(err, "查询职位失败")
	}
	if cnt == 0 {
		return false, ErrRecordNotFound
	}
	return false, nil
}

func (m *MongoOpeningDAO) CountByStatus(ctx context.Context, status string) (int64, error) {
	cnt, err := m.col.CountDocuments(ctx, bson.M{"status": status})
	return cnt, errors.Wrap(err, "统计职位失败")
}

func (m *MongoOpeningDAO) DeleteAll(ctx context.Context) error {
	_, err := m.col.DeleteMany(ctx, bson.M{})
	return errors.Wrap(err, "清空职位失败")
}
