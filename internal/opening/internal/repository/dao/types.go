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

import "github.com/ecodeclub/ekit/sqlx"

type JobOpening struct {
	Id           int64                     `gorm:"primaryKey;autoIncrement:false"`
	Title        string                    `gorm:"type:varchar(256);not null"`
	Department   string                    `gorm:"type:varchar(128);not null"`
	Location     string                    `gorm:"type:varchar(128);not null"`
	Type         string                    `gorm:"type:varchar(32);not null"`
	Status       string                    `gorm:"type:varchar(32);not null;index"`
	Description  string                    `gorm:"type:text"`
	Requirements sqlx.JsonColumn[[]string] `gorm:"type:json"`
	// 冗余的计数，可以通过 reconcile 从候选人表重新算出来
	CandidateCount   int64 `gorm:"not null;default:0"`
	ShortlistedCount int64 `gorm:"not null;default:0"`
	Ctime            int64 `gorm:"index"`
	Utime            int64
}
