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
package seed

import (
	"github.com/ecodeclub/hrhub/internal/candidate"
	"github.com/ecodeclub/hrhub/internal/opening"
)

var sampleOpenings = []opening.Opening{
	{
		Title:        "Frontend Developer",
		Department:   "Engineering",
		Location:     "Remote",
		Type:         opening.TypeFullTime,
		Description:  "We are looking for a skilled frontend developer...",
		Requirements: []string{"React", "TypeScript", "CSS/Tailwind", "3+ years experience"},
	},
	{
		Title:        "UX Designer",
		Department:   "Design",
		Location:     "New York, NY",
		Type:         opening.TypeFullTime,
		Description:  "We need a talented UX designer to join our team...",
		Requirements: []string{"Figma", "User Research", "Prototyping", "2+ years experience"},
	},
	{
		Title:        "Data Scientist",
		Department:   "Data",
		Location:     "Remote",
		Type:         opening.TypeContract,
		Description:  "Looking for a data scientist with ML experience...",
		Requirements: []string{"Python", "Machine Learning", "Data Analysis", "5+ years experience"},
	},
}

// sampleCandidates 每次都返回新的切片，MatchScore 是指针
func sampleCandidates() []candidate.CandidateInput {
	score := func(s int) *int {
		return &s
	}
	return []candidate.CandidateInput{
		{
			Name:   "Alex Johnson",
			Email:  "alex.j@example.com",
			Phone:  "555-123-4567",
			Skills: []string{"React", "TypeScript", "Node.js", "GraphQL"},
			Experience: []candidate.Experience{
				{
					Role:        "Senior Frontend Developer",
					Company:     "Tech Co",
					Duration:    "2020-2023",
					Description: "Led frontend development for multiple products",
				},
				{
					Role:        "Frontend Developer",
					Company:     "StartUp Inc",
					Duration:    "2018-2020",
					Description: "Built responsive web applications",
				},
			},
			Education: []candidate.Education{
				{Degree: "B.S. Computer Science", Institution: "University of Technology", Year: "2018"},
			},
			MatchScore: score(92),
			Status:     candidate.StatusShortlisted,
		},
		{
			Name:   "Sam Wilson",
			Email:  "sam.w@example.com",
			Skills: []string{"JavaScript", "React", "CSS", "HTML"},
			Experience: []candidate.Experience{
				{Role: "Frontend Developer", Company: "Web Solutions", Duration: "2019-2023"},
			},
			Education: []candidate.Education{
				{Degree: "B.A. Design", Institution: "Creative Arts University", Year: "2019"},
			},
			MatchScore: score(78),
			Status:     candidate.StatusNew,
		},
		{
			Name:   "Jamie Lee",
			Email:  "jamie.l@example.com",
			Phone:  "555-987-6543",
			Skills: []string{"React", "Redux", "TypeScript", "Node.js", "MongoDB"},
			Experience: []candidate.Experience{
				{
					Role:        "Full Stack Developer",
					Company:     "Global Tech",
					Duration:    "2017-2023",
					Description: "Developed full stack applications with React and Node.js",
				},
			},
			Education: []candidate.Education{
				{Degree: "M.S. Computer Engineering", Institution: "Tech Institute", Year: "2017"},
			},
			MatchScore: score(95),
			Status:     candidate.StatusShortlisted,
		},
	}
}
