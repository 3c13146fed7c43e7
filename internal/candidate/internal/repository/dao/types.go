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

package dao

import (
	"database/sql"

	"github.com/ecodeclub/ekit/sqlx"
)

type Candidate struct {
	Id         int64                         `gorm:"primaryKey;autoIncrement:false"`
	Name       string                        `gorm:"type:varchar(256);not null"`
	Email      string                        `gorm:"type:varchar(256);not null;uniqueIndex"`
	Phone      string                        `gorm:"type:varchar(64)"`
	Skills     sqlx.JsonColumn[[]string]     `gorm:"type:json"`
	Experience sqlx.JsonColumn[[]Experience] `gorm:"type:json"`
	Education  sqlx.JsonColumn[[]Education]  `gorm:"type:json"`
	ResumeUrl  string                        `gorm:"type:varchar(512)"`
	MatchScore sql.NullInt64                 `gorm:"column:match_score"`
	Status     string                        `gorm:"type:varchar(32);not null;index"`
	// 0 表示没有关联职位
	JobId int64 `gorm:"index"`
	Ctime int64
	Utime int64
}

type Experience struct {
	Role        string `json:"role" bson:"role"`
	Company     string `json:"company" bson:"company"`
	Duration    string `json:"duration" bson:"duration"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

type Education struct {
	Degree      string `json:"degree" bson:"degree"`
	Institution string `json:"institution" bson:"institution"`
	Year        string `json:"year" bson:"year"`
}

type StatusCount struct {
	Total       int64 `gorm:"column:total" bson:"total"`
	Shortlisted int64 `gorm:"column:shortlisted_cnt" bson:"shortlisted"`
	New         int64 `gorm:"column:new_cnt" bson:"new"`
}
