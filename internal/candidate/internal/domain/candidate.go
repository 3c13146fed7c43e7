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

type Status string

const (
	StatusNew          Status = "new"
	StatusShortlisted  Status = "shortlisted"
	StatusInterviewing Status = "interviewing"
	StatusRejected     Status = "rejected"
	StatusHired        Status = "hired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusShortlisted, StatusInterviewing, StatusRejected, StatusHired:
		return true
	default:
		return false
	}
}

type Experience struct {
	Role        string `json:"role" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Duration    string `json:"duration" validate:"required"`
	Description string `json:"description,omitempty"`
}

type Education struct {
	Degree      string `json:"degree" validate:"required"`
	Institution string `json:"institution" validate:"required"`
	Year        string `json:"year" validate:"required"`
}

type Candidate struct {
	ID         int64
	Name       string
	Email      string
	Phone      string
	Skills     []string
	Experience []Experience
	Education  []Education
	ResumeURL  string
	// MatchScore 0 到 100，HasScore 为 false 时表示没有打分
	MatchScore int
	HasScore   bool
	Status     Status
	// JobID 为 0 表示在公共人才库里面
	JobID int64

	Ctime int64
	Utime int64
}

// CandidateInput 创建候选人时调用方提供的数据，
// MatchScore 和 Status 可选，为空的时候由系统补全
type CandidateInput struct {
	Name       string       `json:"name" validate:"required"`
	Email      string       `json:"email" validate:"required,email"`
	Phone      string       `json:"phone,omitempty"`
	Skills     []string     `json:"skills" validate:"min=1,dive,required"`
	Experience []Experience `json:"experience,omitempty" validate:"dive"`
	Education  []Education  `json:"education,omitempty" validate:"dive"`
	ResumeURL  string       `json:"resumeUrl,omitempty"`
	MatchScore *int         `json:"matchScore,omitempty" validate:"omitempty,gte=0,lte=100"`
	Status     Status       `json:"status,omitempty" validate:"omitempty,oneof=new shortlisted interviewing rejected hired"`
}

// Resume 一份待解析的简历
type Resume struct {
	FileName string
	Content  []byte
}

// StatusCount 一次查询得到的候选人统计，保证几个数字彼此一致
type StatusCount struct {
	Total       int64
	Shortlisted int64
	New         int64
}

// JobCount 某个职位下面实际的候选人数量
type JobCount struct {
	JobID       int64
	Total       int64
	Shortlisted int64
}

// IntakeResult 批量录入的结果
type IntakeResult struct {
	IDs []int64
	// JobLinked 为 false 表示职位不存在，候选人进入了公共人才库
	JobLinked bool
}
