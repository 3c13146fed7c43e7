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
package candidate

import (
	"github.com/ecodeclub/hrhub/internal/candidate/internal/domain"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/event"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/job"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/service"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/web"
)

type Module struct {
	Svc          Service
	IntakeSvc    IntakeService
	StatusSvc    StatusService
	CounterSvc   CounterService
	Hdl          *Handler
	ReconcileJob *ReconcileCountersJob
}

type (
	Service        = service.Service
	IntakeService  = service.IntakeService
	StatusService  = service.StatusService
	CounterService = service.CounterService
	Handler        = web.Handler

	ReconcileCountersJob = job.ReconcileCountersJob
)

type (
	Candidate      = domain.Candidate
	CandidateInput = domain.CandidateInput
	Experience     = domain.Experience
	Education      = domain.Education
	Status         = domain.Status
	StatusCount    = domain.StatusCount
	IntakeResult   = domain.IntakeResult
	CandidateEvent = event.CandidateEvent
)

const (
	StatusNew          = domain.StatusNew
	StatusShortlisted  = domain.StatusShortlisted
	StatusInterviewing = domain.StatusInterviewing
	StatusRejected     = domain.StatusRejected
	StatusHired        = domain.StatusHired

	CandidateEventName = event.CandidateEventName
)

var (
	ErrCandidateNotFound = service.ErrCandidateNotFound
	ErrDuplicateEmail    = service.ErrDuplicateEmail
)
