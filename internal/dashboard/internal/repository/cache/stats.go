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
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hrhub/internal/dashboard/internal/domain"
	"github.com/pkg/errors"
)

const (
	latestKey        = "stats:latest"
	latestExpiration = 10 * time.Minute
)

var ErrKeyNotFound = errors.New("缓存中没有快照")

//go:generate mockgen -source=./stats.go -package=cachemocks -destination=./mocks/stats.mock.go StatsCache
type StatsCache interface {
	GetLatest(ctx context.Context) (domain.Stats, error)
	// SetLatest 覆盖缓存，写入新快照之后调用
	SetLatest(ctx context.Context, s domain.Stats) error
	// FillLatest 只在缓存里没有快照的时候写入，查库回填用
	FillLatest(ctx context.Context, s domain.Stats) error
	DelLatest(ctx context.Context) error
}

type statsCache struct {
	ec ecache.Cache
}

func NewStatsCache(ec ecache.Cache) StatsCache {
	return &statsCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "dashboard:",
		},
	}
}

func (c *statsCache) GetLatest(ctx context.Context) (domain.Stats, error) {
	val := c.ec.Get(ctx, latestKey)
	if val.KeyNotFound() {
		return domain.Stats{}, ErrKeyNotFound
	}
	if val.Err != nil {
		return domain.Stats{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	var s domain.Stats
	err := json.Unmarshal([]byte(val.Val.(string)), &s)
	if err != nil {
		return domain.Stats{}, errors.Wrap(err, "反序列化快照失败")
	}
	return s, nil
}

func (c *statsCache) SetLatest(ctx context.Context, s domain.Stats) error {
	b, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "序列化快照失败")
	}
	return c.ec.Set(ctx, latestKey, string(b), latestExpiration)
}

func (c *statsCache) FillLatest(ctx context.Context, s domain.Stats) error {
	b, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "序列化快照失败")
	}
	_, err = c.ec.SetNX(ctx, latestKey, string(b), latestExpiration)
	return err
}

func (c *statsCache) DelLatest(ctx context.Context) error {
	_, err := c.ec.Delete(ctx, latestKey)
	return err
}
