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
package web

import (
	"time"

	"github.com/ecodeclub/hrhub/internal/dashboard/internal/domain"
)

type Stats struct {
	OpenPositions         int64   `json:"openPositions"`
	TotalCandidates       int64   `json:"totalCandidates"`
	ShortlistedCandidates int64   `json:"shortlistedCandidates"`
	NewCandidates         int64   `json:"newCandidates"`
	HiringRate            float64 `json:"hiringRate"`
	LastUpdated           string  `json:"lastUpdated"`
}

func newStats(s domain.Stats) Stats {
	return Stats{
		OpenPositions:         s.OpenPositions,
		TotalCandidates:       s.TotalCandidates,
		ShortlistedCandidates: s.ShortlistedCandidates,
		NewCandidates:         s.NewCandidates,
		HiringRate:            s.HiringRate,
		LastUpdated:           s.LastUpdatedTime().UTC().Format(time.RFC3339Nano),
	}
}
