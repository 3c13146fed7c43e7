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

	"github.com/ecodeclub/hrhub/internal/dashboard/internal/repository/dao"
	testioc "github.com/ecodeclub/hrhub/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoStatsDAOTestSuite struct {
	suite.Suite
	db  *mongo.Database
	dao *dao.MongoStatsDAO
}

func (s *MongoStatsDAOTestSuite) SetupSuite() {
	s.db = testioc.InitMongoDB()
	require.NoError(s.T(), dao.InitCollections(s.db))
	s.dao = dao.NewMongoStatsDAO(s.db)
}

func (s *MongoStatsDAOTestSuite) TearDownTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(s.T(), s.dao.DeleteAll(ctx))
}

func (s *MongoStatsDAOTestSuite) TestLatestAndList() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := s.dao.Latest(ctx)
	assert.ErrorIs(t, err, dao.ErrRecordNotFound)

	for _, st := range []dao.DashboardStats{
		{Id: 1, TotalCandidates: 1, LastUpdated: 100},
		{Id: 3, TotalCandidates: 3, LastUpdated: 300},
		{Id: 2, TotalCandidates: 2, HiringRate: 50, LastUpdated: 200},
	} {
		require.NoError(t, s.dao.Insert(ctx, st))
	}

	latest, err := s.dao.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, dao.DashboardStats{Id: 3, TotalCandidates: 3, LastUpdated: 300}, latest)

	list, err := s.dao.List(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []dao.DashboardStats{
		{Id: 3, TotalCandidates: 3, LastUpdated: 300},
		{Id: 2, TotalCandidates: 2, HiringRate: 50, LastUpdated: 200},
	}, list)
}

func TestMongoStatsDAO(t *testing.T) {
	suite.Run(t, new(MongoStatsDAOTestSuite))
}
