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
package event

const CandidateEventName = "candidate_events"

const (
	ActionIntake = "intake"
	ActionStatus = "status"
)

// CandidateEvent 候选人数据发生变化之后发出，看板据此刷新统计
type CandidateEvent struct {
	Action       string  `json:"action"`
	JobID        int64   `json:"jobId"`
	CandidateIDs []int64 `json:"candidateIds"`
	// Status 和 PrevStatus 只在 status 事件里面有
	Status     string `json:"status,omitempty"`
	PrevStatus string `json:"prevStatus,omitempty"`
	Ctime      int64  `json:"ctime"`
}
