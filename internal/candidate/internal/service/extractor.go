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
	"fmt"
	"math/rand/v2"
	"path"
	"strings"

	"github.com/ecodeclub/hrhub/internal/candidate/internal/domain"
	"github.com/lithammer/shortuuid/v4"
)

// ResumeExtractor 把一份简历解析成候选人信息
type ResumeExtractor interface {
	Extract(ctx context.Context, resume domain.Resume) (domain.CandidateInput, error)
}

var (
	placeholderNames = []string{
		"Alex Johnson", "Sam Wilson", "Jamie Lee", "Taylor Morgan",
		"Jordan Smith", "Casey Brown", "Riley Chen", "Morgan Davis",
	}
	placeholderSkills = []string{
		"React", "TypeScript", "Node.js", "GraphQL", "JavaScript", "CSS",
		"HTML", "Redux", "MongoDB", "Python", "Go", "Figma",
		"User Research", "Machine Learning", "Data Analysis", "SQL",
	}
	placeholderCompanies = []string{"Tech Co", "StartUp Inc", "Web Solutions", "Global Tech"}
	placeholderRoles     = []string{"Frontend Developer", "Full Stack Developer", "UX Designer", "Data Analyst"}
	placeholderSchools   = []string{"University of Technology", "Creative Arts University", "Tech Institute"}
	placeholderDegrees   = []string{"B.S. Computer Science", "B.A. Design", "M.S. Computer Engineering"}
)

// PlaceholderExtractor 不读简历内容，随机生成一份结构化数据
type PlaceholderExtractor struct{}

func NewPlaceholderExtractor() ResumeExtractor {
	return PlaceholderExtractor{}
}

func (PlaceholderExtractor) Extract(_ context.Context, resume domain.Resume) (domain.CandidateInput, error) {
	key := shortuuid.New()
	fileName := resume.FileName
	if fileName == "" {
		fileName = "resume.pdf"
	}
	start := 2015 + rand.IntN(8)
	end := start + 1 + rand.IntN(3)
	return domain.CandidateInput{
		Name:   pick(placeholderNames),
		Email:  fmt.Sprintf("candidate-%s@example.com", strings.ToLower(key)),
		Skills: pickN(placeholderSkills, 3+rand.IntN(3)),
		Experience: []domain.Experience{
			{
				Role:     pick(placeholderRoles),
				Company:  pick(placeholderCompanies),
				Duration: fmt.Sprintf("%d-%d", start, end),
			},
		},
		Education: []domain.Education{
			{
				Degree:      pick(placeholderDegrees),
				Institution: pick(placeholderSchools),
				Year:        fmt.Sprintf("%d", start),
			},
		},
		ResumeURL: path.Join("/resumes", key, path.Base(fileName)),
	}, nil
}

func pick(src []string) string {
	return src[rand.IntN(len(src))]
}

// pickN 不重复地取 n 个
func pickN(src []string, n int) []string {
	n = min(n, len(src))
	res := make([]string, 0, n)
	for _, idx := range rand.Perm(len(src))[:n] {
		res = append(res, src[idx])
	}
	return res
}
