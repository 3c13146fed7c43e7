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
	"io"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/domain"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/repository"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Candidates"

var exportHeaders = []string{
	"ID", "Name", "Email", "Phone", "Skills", "Experience",
	"Education", "Match Score", "Status", "Job ID", "Resume URL",
}

type ExportService interface {
	// ExportXLSX jobID 为 0 时导出全部候选人，返回导出的行数
	ExportXLSX(ctx context.Context, jobID int64, w io.Writer) (int, error)
}

type exportService struct {
	repo repository.CandidateRepository
}

func NewExportService(repo repository.CandidateRepository) ExportService {
	return &exportService{repo: repo}
}

func (s *exportService) ExportXLSX(ctx context.Context, jobID int64, w io.Writer) (int, error) {
	var (
		cs  []domain.Candidate
		err error
	)
	if jobID == 0 {
		cs, err = s.repo.List(ctx)
	} else {
		cs, err = s.repo.ListByJob(ctx, jobID)
	}
	if err != nil {
		return 0, err
	}

	f := excelize.NewFile()
	defer f.Close()
	if err = f.SetSheetName("Sheet1", exportSheet); err != nil {
		return 0, err
	}
	if err = s.writeHeader(f); err != nil {
		return 0, err
	}
	for i, c := range cs {
		cell, err1 := excelize.CoordinatesToCellName(1, i+2)
		if err1 != nil {
			return 0, err1
		}
		if err1 = f.SetSheetRow(exportSheet, cell, s.row(c)); err1 != nil {
			return 0, fmt.Errorf("写入第 %d 行失败: %w", i+2, err1)
		}
	}
	if _, err = f.WriteTo(w); err != nil {
		return 0, fmt.Errorf("输出 xlsx 失败: %w", err)
	}
	return len(cs), nil
}

func (s *exportService) writeHeader(f *excelize.File) error {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	headers := slice.Map(exportHeaders, func(idx int, src string) any {
		return src
	})
	if err = f.SetSheetRow(exportSheet, "A1", &headers); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	if err != nil {
		return err
	}
	if err = f.SetCellStyle(exportSheet, "A1", last, style); err != nil {
		return err
	}
	if err = f.SetColWidth(exportSheet, "A", "K", 20); err != nil {
		return err
	}
	return f.SetPanes(exportSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func (s *exportService) row(c domain.Candidate) *[]any {
	var score any
	if c.HasScore {
		score = c.MatchScore
	}
	var job any
	if c.JobID != 0 {
		// 超过 15 位的数字 excel 会丢精度
		job = fmt.Sprintf("%d", c.JobID)
	}
	row := []any{
		fmt.Sprintf("%d", c.ID),
		c.Name,
		c.Email,
		c.Phone,
		strings.Join(c.Skills, ", "),
		strings.Join(slice.Map(c.Experience, func(idx int, src domain.Experience) string {
			return fmt.Sprintf("%s @ %s (%s)", src.Role, src.Company, src.Duration)
		}), "; "),
		strings.Join(slice.Map(c.Education, func(idx int, src domain.Education) string {
			return fmt.Sprintf("%s, %s, %s", src.Degree, src.Institution, src.Year)
		}), "; "),
		score,
		c.Status.String(),
		job,
		c.ResumeURL,
	}
	return &row
}
