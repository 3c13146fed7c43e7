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

import "github.com/ecodeclub/hrhub/internal/opening/internal/domain"

type Job struct {
	ID               int64    `json:"id,string"`
	Title            string   `json:"title"`
	Department       string   `json:"department"`
	Location         string   `json:"location"`
	Type             string   `json:"type"`
	Status           string   `json:"status"`
	Description      string   `json:"description"`
	Requirements     []string `json:"requirements"`
	CreatedAt        string   `json:"createdAt"`
	CandidateCount   int64    `json:"candidateCount"`
	ShortlistedCount int64    `json:"shortlistedCount"`
}

func newJob(o domain.Opening) Job {
	return Job{
		ID:               o.ID,
		Title:            o.Title,
		Department:       o.Department,
		Location:         o.Location,
		Type:             o.Type.String(),
		Status:           o.Status.String(),
		Description:      o.Description,
		Requirements:     o.Requirements,
		CreatedAt:        o.CreatedAt(),
		CandidateCount:   o.CandidateCount,
		ShortlistedCount: o.ShortlistedCount,
	}
}

type CreateReq struct {
	Title        string   `json:"title"`
	Department   string   `json:"department"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`
	Status       string   `json:"status,omitempty"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

func (r CreateReq) toDomain() domain.Opening {
	return domain.Opening{
		Title:        r.Title,
		Department:   r.Department,
		Location:     r.Location,
		Type:         domain.JobType(r.Type),
		Status:       domain.Status(r.Status),
		Description:  r.Description,
		Requirements: r.Requirements,
	}
}

type CreateResp struct {
	ID int64 `json:"id,string"`
}

type UpdateStatusReq struct {
	Status string `json:"status"`
}
