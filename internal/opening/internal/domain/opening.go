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

import "time"

type JobType string

const (
	TypeFullTime JobType = "full-time"
	TypePartTime JobType = "part-time"
	TypeContract JobType = "contract"
	TypeRemote   JobType = "remote"
)

func (t JobType) String() string {
	return string(t)
}

type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusClosed
}

// Opening 招聘职位。
// CandidateCount 和 ShortlistedCount 只能通过候选人模块修改
type Opening struct {
	ID           int64
	Title        string   `json:"title" validate:"required"`
	Department   string   `json:"department" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Type         JobType  `json:"type" validate:"required,oneof=full-time part-time contract remote"`
	Status       Status   `json:"status" validate:"omitempty,oneof=active closed"`
	Description  string   `json:"description" validate:"required"`
	Requirements []string `json:"requirements" validate:"min=1,dive,required"`

	CandidateCount   int64
	ShortlistedCount int64

	Ctime int64
	Utime int64
}

// Counters 职位上的冗余计数
type Counters struct {
	Candidates  int64
	Shortlisted int64
}

func (o Opening) Counters() Counters {
	return Counters{Candidates: o.CandidateCount, Shortlisted: o.ShortlistedCount}
}

// CreatedAt 创建时间，按 UTC 只精确到天
func (o Opening) CreatedAt() string {
	return time.UnixMilli(o.Ctime).UTC().Format(time.DateOnly)
}
