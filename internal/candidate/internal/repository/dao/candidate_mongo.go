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

package dao

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const candidateCollection = "candidates"

type candidateDocument struct {
	Id         int64        `bson:"_id"`
	Name       string       `bson:"name"`
	Email      string       `bson:"email"`
	Phone      string       `bson:"phone,omitempty"`
	Skills     []string     `bson:"skills"`
	Experience []Experience `bson:"experience"`
	Education  []Education  `bson:"education"`
	ResumeUrl  string       `bson:"resumeUrl,omitempty"`
	MatchScore *int64       `bson:"matchScore,omitempty"`
	Status     string       `bson:"status"`
	JobId      int64        `bson:"jobId,omitempty"`
	Ctime      int64        `bson:"ctime"`
	Utime      int64        `bson:"utime"`
}

func newCandidateDocument(c Candidate) candidateDocument {
	doc := candidateDocument{
		Id:         c.Id,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Skills:     c.Skills.Val,
		Experience: c.Experience.Val,
		Education:  c.Education.Val,
		ResumeUrl:  c.ResumeUrl,
		Status:     c.Status,
		JobId:      c.JobId,
		Ctime:      c.Ctime,
		Utime:      c.Utime,
	}
	if c.MatchScore.Valid {
		score := c.MatchScore.Int64
		doc.MatchScore = &score
	}
	return doc
}

func (d candidateDocument) toEntity() Candidate {
	c := Candidate{
		Id:         d.Id,
		Name:       d.Name,
		Email:      d.Email,
		Phone:      d.Phone,
		Skills:     sqlx.JsonColumn[[]string]{Val: d.Skills, Valid: d.Skills != nil},
		Experience: sqlx.JsonColumn[[]Experience]{Val: d.Experience, Valid: d.Experience != nil},
		Education:  sqlx.JsonColumn[[]Education]{Val: d.Education, Valid: d.Education != nil},
		ResumeUrl:  d.ResumeUrl,
		Status:     d.Status,
		JobId:      d.JobId,
		Ctime:      d.Ctime,
		Utime:      d.Utime,
	}
	if d.MatchScore != nil {
		c.MatchScore = sql.NullInt64{Int64: *d.MatchScore, Valid: true}
	}
	return c
}

type MongoCandidateDAO struct {
	col    *mongo.Collection
	logger *elog.Component
}

func NewMongoCandidateDAO(db *mongo.Database) *MongoCandidateDAO {
	return &MongoCandidateDAO{
		col:    db.Collection(candidateCollection),
		logger: elog.DefaultLogger,
	}
}

// BatchCreate mongo 没有跨文档的事务保证，失败的时候把这一批已经插进去的删掉
func (m *MongoCandidateDAO) BatchCreate(ctx context.Context, cs []Candidate) error {
	if len(cs) == 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	docs := make([]any, 0, len(cs))
	ids := make([]int64, 0, len(cs))
	for i := range cs {
		cs[i].Ctime = now
		cs[i].Utime = now
		docs = append(docs, newCandidateDocument(cs[i]))
		ids = append(ids, cs[i].Id)
	}
	_, err := m.col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if err == nil {
		return nil
	}
	m.rollback(ctx, ids, err)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %s", ErrDuplicateEmail, err.Error())
	}
	return errors.Wrap(err, "批量插入候选人失败")
}

// rollback 有序插入在第一个失败的文档处停下，只删掉它前面已经写进去的
func (m *MongoCandidateDAO) rollback(ctx context.Context, ids []int64, cause error) {
	inserted := ids
	var bwe mongo.BulkWriteException
	if errors.As(cause, &bwe) && len(bwe.WriteErrors) > 0 {
		inserted = ids[:bwe.WriteErrors[0].Index]
	}
	if len(inserted) == 0 {
		return
	}
	// 用独立的 ctx，避免调用方的 ctx 已经超时导致清理失败
	cleanCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if _, err := m.col.DeleteMany(cleanCtx, bson.M{"_id": bson.M{"$in": inserted}}); err != nil {
		m.logger.Error("回滚批量插入的候选人失败",
			elog.Any("ids", inserted),
			elog.FieldErr(err))
	}
}

func (m *MongoCandidateDAO) FindByID(ctx context.Context, id int64) (Candidate, error) {
	var doc candidateDocument
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Candidate{}, ErrRecordNotFound
	}
	if err != nil {
		return Candidate{}, errors.Wrap(err, "查询候选人失败")
	}
	return doc.toEntity(), nil
}

func (m *MongoCandidateDAO) List(ctx context.Context) ([]Candidate, error) {
	return m.find(ctx, bson.M{})
}

func (m *MongoCandidateDAO) ListByJob(ctx context.Context, jobID int64) ([]Candidate, error) {
	return m.find(ctx, bson.M{"jobId": jobID})
}

func (m *MongoCandidateDAO) find(ctx context.Context, filter bson.M) ([]Candidate, error) {
	opts := options.Find().SetSort(bson.D{{Key: "ctime", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "查询候选人列表失败")
	}
	var docs []candidateDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "解析候选人列表失败")
	}
	return slice.Map(docs, func(idx int, src candidateDocument) Candidate {
		return src.toEntity()
	}), nil
}

func (m *MongoCandidateDAO) UpdateStatus(ctx context.Context, id int64, status string) (string, error) {
	var before candidateDocument
	err := m.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "utime": time.Now().UnixMilli()}},
		options.FindOneAndUpdate().
			SetReturnDocument(options.Before).
			SetProjection(bson.M{"status": 1}),
	).Decode(&before)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", ErrRecordNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "更新候选人状态失败")
	}
	return before.Status, nil
}

func (m *MongoCandidateDAO) CountByStatus(ctx context.Context) (StatusCount, error) {
	return m.count(ctx, bson.M{})
}

func (m *MongoCandidateDAO) CountByJob(ctx context.Context, jobID int64) (StatusCount, error) {
	return m.count(ctx, bson.M{"jobId": jobID})
}

// count 一次聚合得到总数和各状态的数量
func (m *MongoCandidateDAO) count(ctx context.Context, match bson.M) (StatusCount, error) {
	countIf := func(status string) bson.M {
		return bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$status", status}}, 1, 0}}}
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":         nil,
			"total":       bson.M{"$sum": 1},
			"shortlisted": countIf(statusShortlisted),
			"new":         countIf(statusNew),
		}}},
	}
	cursor, err := m.col.Aggregate(ctx, pipeline)
	if err != nil {
		return StatusCount{}, errors.Wrap(err, "统计候选人失败")
	}
	var res []StatusCount
	if err = cursor.All(ctx, &res); err != nil {
		return StatusCount{}, errors.Wrap(err, "解析候选人统计失败")
	}
	// 没有任何文档的时候 $group 不会输出结果
	if len(res) == 0 {
		return StatusCount{}, nil
	}
	return res[0], nil
}

func (m *MongoCandidateDAO) DeleteAll(ctx context.Context) error {
	_, err := m.col.DeleteMany(ctx, bson.M{})
	return errors.Wrap(err, "清空候选人失败")
}
