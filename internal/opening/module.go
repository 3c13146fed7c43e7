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

package opening

import (
	"github.com/ecodeclub/hrhub/internal/opening/internal/domain"
	"github.com/ecodeclub/hrhub/internal/opening/internal/service"
	"github.com/ecodeclub/hrhub/internal/opening/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
}

type Service = service.Service

var ErrOpeningNotFound = service.ErrOpeningNotFound
type Handler = web.Handler

type Opening = domain.Opening
type JobType = domain.JobType
type Status = domain.Status
type Counters = domain.Counters

const (
	TypeFullTime = domain.TypeFullTime
	TypePartTime = domain.TypePartTime
	TypeContract = domain.TypeContract
	TypeRemote   = domain.TypeRemote

	StatusActive = domain.StatusActive
	StatusClosed = domain.StatusClosed
)
