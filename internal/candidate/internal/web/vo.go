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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/domain"
)

type Experience struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description,omitempty"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

type Candidate struct {
	ID         int64        `json:"id,string"`
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone,omitempty"`
	Skills     []string     `json:"skills"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	ResumeURL  string       `json:"resumeUrl,omitempty"`
	MatchScore *int         `json:"matchScore,omitempty"`
	Status     string       `json:"status"`
	JobID      int64        `json:"jobId,omitempty,string"`
}

func newCandidate(c domain.Candidate) Candidate {
	res := Candidate{
		ID:     c.ID,
		Name:   c.Name,
		Email:  c.Email,
		Phone:  c.Phone,
		Skills: c.Skills,
		Experience: slice.Map(c.Experience, func(idx int, src domain.Experience) Experience {
			return Experience(src)
		}),
		Education: slice.Map(c.Education, func(idx int, src domain.Education) Education {
			return Education(src)
		}),
		ResumeURL: c.ResumeURL,
		Status:    c.Status.String(),
		JobID:     c.JobID,
	}
	if c.HasScore {
		score := c.MatchScore
		res.MatchScore = &score
	}
	return res
}

func newCandidates(cs []domain.Candidate) []Candidate {
	return slice.Map(cs, func(idx int, src domain.Candidate) Candidate {
		return newCandidate(src)
	})
}

type CandidateInput struct {
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone,omitempty"`
	Skills     []string     `json:"skills"`
	Experience []Experience `json:"experience,omitempty"`
	Education  []Education  `json:"education,omitempty"`
	ResumeURL  string       `json:"resumeUrl,omitempty"`
	MatchScore *int         `json:"matchScore,omitempty"`
	Status     string       `json:"status,omitempty"`
}

func (c CandidateInput) toDomain() domain.CandidateInput {
	return domain.CandidateInput{
		Name:   c.Name,
		Email:  c.Email,
		Phone:  c.Phone,
		Skills: c.Skills,
		Experience: slice.Map(c.Experience, func(idx int, src Experience) domain.Experience {
			return domain.Experience(src)
		}),
		Education: slice.Map(c.Education, func(idx int, src Education) domain.Education {
			return domain.Education(src)
		}),
		ResumeURL:  c.ResumeURL,
		MatchScore: c.MatchScore,
		Status:     domain.Status(c.Status),
	}
}

// UploadResumesReq candidates 为空的时候按 count 生成占位简历
type UploadResumesReq struct {
	JobID      int64            `json:"jobId,string,omitempty"`
	Count      int              `json:"count"`
	Candidates []CandidateInput `json:"candidates,omitempty"`
}

type UploadResumesResp struct {
	Uploaded  int      `json:"uploaded"`
	Processed int      `json:"processed"`
	IDs       []string `json:"ids"`
	JobLinked bool     `json:"jobLinked"`
}

type ShortlistReq struct {
	JobID int64 `json:"jobId,string,omitempty"`
}

type ShortlistResp struct {
	Success   bool      `json:"success"`
	Candidate Candidate `json:"candidate"`
}

type UpdateStatusReq struct {
	Status string `json:"status"`
}

type ReconcileResp struct {
	JobID            int64 `json:"jobId,string"`
	CandidateCount   int64 `json:"candidateCount"`
	ShortlistedCount int64 `json:"shortlistedCount"`
}
