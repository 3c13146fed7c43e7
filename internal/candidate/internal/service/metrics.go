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
package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	intakeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hrhub",
		Subsystem: "candidate",
		Name:      "intake_total",
		Help:      "录入的候选人数量",
	}, []string{"linked"})
	statusTransitionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hrhub",
		Subsystem: "candidate",
		Name:      "status_transition_total",
		Help:      "候选人状态变更次数",
	}, []string{"status"})
)
