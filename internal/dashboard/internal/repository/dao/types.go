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

type DashboardStats struct {
	Id                    int64   `gorm:"primaryKey;autoIncrement:false" bson:"_id"`
	OpenPositions         int64   `bson:"openPositions"`
	TotalCandidates       int64   `bson:"totalCandidates"`
	ShortlistedCandidates int64   `bson:"shortlistedCandidates"`
	NewCandidates         int64   `bson:"newCandidates"`
	HiringRate            float64 `gorm:"type:decimal(5,1)" bson:"hiringRate"`
	LastUpdated           int64   `gorm:"index" bson:"lastUpdated"`
}
