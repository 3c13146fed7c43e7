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
package domain

import (
	"math"
	"time"
)

// Stats 某一时刻的看板快照，只追加不修改
type Stats struct {
	ID                    int64
	OpenPositions         int64
	TotalCandidates       int64
	ShortlistedCandidates int64
	NewCandidates         int64
	// HiringRate 入围人数占比，百分数，保留一位小数
	HiringRate  float64
	LastUpdated int64
}

// HiringRate 没有候选人的时候返回 0
func HiringRate(shortlisted, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(shortlisted)/float64(total)*1000) / 10
}

func (s Stats) LastUpdatedTime() time.Time {
	return time.UnixMilli(s.LastUpdated)
}
