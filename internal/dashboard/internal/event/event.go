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

// CandidateEvent 只关心发生了变化，具体内容不影响重新统计
type CandidateEvent struct {
	Action       string  `json:"action"`
	JobID        int64   `json:"jobId"`
	CandidateIDs []int64 `json:"candidateIds"`
}
