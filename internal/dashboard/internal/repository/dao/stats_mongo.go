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

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const statsCollection = "dashboard_stats"

var latestSort = bson.D{{Key: "lastUpdated", Value: -1}, {Key: "_id", Value: -1}}

type MongoStatsDAO struct {
	col *mongo.Collection
}

func NewMongoStatsDAO(db *mongo.Database) *MongoStatsDAO {
	return &MongoStatsDAO{col: db.Collection(statsCollection)}
}

func (m *MongoStatsDAO) Insert(ctx context.Context, s DashboardStats) error {
	_, err := m.col.InsertOne(ctx, s)
	return errors.Wrap(err, "插入看板快照失败")
}

func (m *MongoStatsDAO) Latest(ctx context.Context) (DashboardStats, error) {
	var res DashboardStats
	err := m.col.FindOne(ctx, bson.M{}, options.FindOne().SetSort(latestSort)).Decode(&res)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return DashboardStats{}, ErrRecordNotFound
	}
	return res, errors.Wrap(err, "查询最新看板快照失败")
}

func (m *MongoStatsDAO) List(ctx context.Context, limit int) ([]DashboardStats, error) {
	opts := options.Find().SetSort(latestSort).SetLimit(int64(limit))
	cursor, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "查询看板快照失败")
	}
	var res []DashboardStats
	err = cursor.All(ctx, &res)
	return res, errors.Wrap(err, "解析看板快照失败")
}

func (m *MongoStatsDAO) DeleteAll(ctx context.Context) error {
	_, err := m.col.DeleteMany(ctx, bson.M{})
	return errors.Wrap(err, "清空看板快照失败")
}
