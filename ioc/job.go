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
package ioc

import (
	"context"
	"strconv"
	"time"

	"github.com/ecodeclub/hrhub/internal/candidate"
	"github.com/ecodeclub/hrhub/internal/dashboard"
	"github.com/ecodeclub/hrhub/internal/seed"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/gotomicro/ego/task/ejob"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var cronJobDuration = promauto.NewSummaryVec(prometheus.SummaryOpts{
	Namespace: "hrhub",
	Name:      "cron_job_duration_seconds",
	Help:      "定时任务的执行时间",
	Objectives: map[float64]float64{
		0.5:  0.05,
		0.9:  0.01,
		0.99: 0.001,
	},
}, []string{"name", "success"})

func initCronJobs(
	rJob *candidate.ReconcileCountersJob,
	sJob *dashboard.RefreshStatsJob,
) []ecron.Ecron {
	return []ecron.Ecron{
		ecron.Load("cron.reconcile").Build(ecron.WithJob(funcJobWrapper(rJob))),
		ecron.Load("cron.stats").Build(ecron.WithJob(funcJobWrapper(sJob))),
	}
}

// initJobs 通过 --job=seed 执行
func initJobs(sJob *seed.Job) []ejob.Ejob {
	return []ejob.Ejob{
		ejob.Job(sJob.Name(), sJob.Start),
	}
}

func funcJobWrapper(job ecron.NamedJob) ecron.FuncJob {
	name := job.Name()
	return func(ctx context.Context) error {
		start := time.Now()
		elog.DefaultLogger.Debug("开始运行",
			elog.String("cronjob", name))
		err := job.Run(ctx)
		cronJobDuration.WithLabelValues(name, strconv.FormatBool(err == nil)).
			Observe(time.Since(start).Seconds())
		if err != nil {
			elog.DefaultLogger.Error("执行失败",
				elog.FieldErr(err),
				elog.String("cronjob", name))
			return err
		}
		duration := time.Since(start)
		elog.DefaultLogger.Debug("结束运行",
			elog.String("cronjob", name),
			elog.FieldKey("运行时间"),
			elog.FieldCost(duration))
		return nil
	}
}
