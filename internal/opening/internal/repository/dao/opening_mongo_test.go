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
//go:build e2e

package dao_test

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/hrhub/internal/opening/internal/repository/dao"
	testioc "github.com/ecodeclub/hrhub/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoOpeningDAOTestSuite struct {
	suite.Suite
	db  *mongo.Database
	dao *dao.MongoOpeningDAO
}

func (s *MongoOpeningDAOTestSuite) SetupSuite() {
	s.db = testioc.InitMongoDB()
	require.NoError(s.T(), dao.InitCollections(s.db))
	s.dao = dao.NewMongoOpeningDAO(s.db)
}

func (s *MongoOpeningDAOTestSuite) SetupTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	o := dao.JobOpening{
		Id:         1,
		Title:      "后端工程师",
		Department: "研发",
		Location:   "深圳",
		Type:       "full-time",
		Status:     "active",
	}
	o.Requirements.Val, o.Requirements.Valid = []string{"Go"}, true
	_, err := s.dao.Create(ctx, o)
	require.NoError(s.T(), err)
}

func (s *MongoOpeningDAOTestSuite) TearDownTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_, err := s.db.Collection("job_openings").DeleteMany(ctx, bson.M{})
	require.NoError(s.T(), err)
}

func (s *MongoOpeningDAOTestSuite) TestIncrCounters() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	found, err := s.dao.IncrCounters(ctx, 1, 3, 0)
	require.NoError(t, err)
	assert.True(t, found)
	found, err = s.dao.IncrCounters(ctx, 1, 0, 2)
	require.NoError(t, err)
	assert.True(t, found)

	o, err := s.dao.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), o.CandidateCount)
	assert.Equal(t, int64(2), o.ShortlistedCount)

	found, err = s.dao.IncrCounters(ctx, 404, 1, 0)
	require.NoError(t, err)
	assert.False(t, found)
}

func (s *MongoOpeningDAOTestSuite) TestSetCounters() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_, err := s.dao.IncrCounters(ctx, 1, 5, 0)
	require.NoError(t, err)

	// 期望的旧值已经过时，不能覆盖
	ok, err := s.dao.SetCounters(ctx, 1, 4, 0, 2, 0)
	require.NoError(t, err)
	assert.False(t, ok)
	o, err := s.dao.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), o.CandidateCount)

	ok, err = s.dao.SetCounters(ctx, 1, 5, 0, 2, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	o, err = s.dao.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), o.CandidateCount)
	assert.Equal(t, int64(1), o.ShortlistedCount)

	_, err = s.dao.SetCounters(ctx, 404, 0, 0, 1, 0)
	assert.ErrorIs(t, err, dao.ErrRecordNotFound)
}

func TestMongoOpeningDAO(t *testing.T) {
	suite.Run(t, new(MongoOpeningDAOTestSuite))
}
