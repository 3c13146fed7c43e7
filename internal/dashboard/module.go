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
package dashboard

import (
	"github.com/ecodeclub/hrhub/internal/dashboard/internal/domain"
	"github.com/ecodeclub/hrhub/internal/dashboard/internal/event"
	"github.com/ecodeclub/hrhub/internal/dashboard/internal/job"
	"github.com/ecodeclub/hrhub/internal/dashboard/internal/service"
	"github.com/ecodeclub/hrhub/internal/dashboard/internal/web"
)

type Module struct {
	Svc        Service
	Hdl        *Handler
	RefreshJob *RefreshStatsJob
	Consumer   *CandidateEventConsumer
}

type (
	Service                = service.Service
	Handler                = web.Handler
	RefreshStatsJob        = job.RefreshStatsJob
	CandidateEventConsumer = event.CandidateEventConsumer
	Stats                  = domain.Stats
)
