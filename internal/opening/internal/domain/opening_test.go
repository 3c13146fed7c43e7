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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOpening_CreatedAt(t *testing.T) {
	// 东八区已经是第二天了，日期仍然按 UTC 算
	local := time.Local
	time.Local = time.FixedZone("UTC+8", 8*3600)
	defer func() {
		time.Local = local
	}()
	testCases := []struct {
		name  string
		ctime time.Time
		want  string
	}{
		{
			name:  "UTC 当天深夜",
			ctime: time.Date(2024, 3, 5, 23, 30, 0, 0, time.UTC),
			want:  "2024-03-05",
		},
		{
			name:  "UTC 零点",
			ctime: time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
			want:  "2024-03-06",
		},
		{
			name:  "其他时区创建",
			ctime: time.Date(2024, 3, 6, 1, 0, 0, 0, time.FixedZone("UTC+8", 8*3600)),
			want:  "2024-03-05",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := Opening{Ctime: tc.ctime.UnixMilli()}
			assert.Equal(t, tc.want, o.CreatedAt())
		})
	}
}

func TestOpening_Counters(t *testing.T) {
	o := Opening{CandidateCount: 3, ShortlistedCount: 1}
	assert.Equal(t, Counters{Candidates: 3, Shortlisted: 1}, o.Counters())
}
