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
	"context"
	"math/rand/v2"

	"github.com/ecodeclub/hrhub/internal/candidate/internal/domain"
)

const (
	minMatchScore = 60
	maxMatchScore = 100
)

// Scorer 给没有匹配度的候选人打分
type Scorer interface {
	Score(ctx context.Context, in domain.CandidateInput) int
}

// RandomScorer 在 [60, 100] 里面随机取一个整数，占位用
type RandomScorer struct{}

func NewRandomScorer() Scorer {
	return RandomScorer{}
}

func (RandomScorer) Score(_ context.Context, _ domain.CandidateInput) int {
	return minMatchScore + rand.IntN(maxMatchScore-minMatchScore+1)
}
