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

package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/syncx"
)

// Biz 区分不同实体的 ID 空间
type Biz uint

const (
	BizOpening Biz = iota
	BizCandidate
	BizStats

	bizCnt
)

func (b Biz) String() string {
	switch b {
	case BizOpening:
		return "opening"
	case BizCandidate:
		return "candidate"
	case BizStats:
		return "stats"
	default:
		return fmt.Sprintf("biz(%d)", uint(b))
	}
}

type IDGenerator interface {
	Generate(biz Biz) (ID, error)
}

const (
	maxNode uint = 31
	maxBiz  uint = 31
)

var (
	ErrExceedNode = errors.New("node超出限制")
	ErrExceedBiz  = errors.New("biz超出限制")
	ErrUnknownBiz = errors.New("未知的biz")
)

// +---------------------------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp |  5 Bit Biz  |  5 Bit NodeID  |   12 Bit Sequence ID  |
// +---------------------------------------------------------------------------------------+

type Generator struct {
	nodes syncx.Map[Biz, *snowflake.Node]
}

// NewGenerator nodeID 是当前实例的编号，同一个集群里面不能重复
func NewGenerator(nodeID uint) (*Generator, error) {
	return newGenerator(nodeID, uint(bizCnt))
}

func newGenerator(nodeID uint, bizs uint) (*Generator, error) {
	if nodeID > maxNode {
		return nil, fmt.Errorf("%w: %d", ErrExceedNode, nodeID)
	}
	if bizs > maxBiz+1 {
		return nil, fmt.Errorf("%w: %d", ErrExceedBiz, bizs)
	}
	g := &Generator{}
	for i := uint(0); i < bizs; i++ {
		n, err := snowflake.NewNode(int64(i<<5 | nodeID))
		if err != nil {
			return nil, err
		}
		g.nodes.Store(Biz(i), n)
	}
	return g, nil
}

func (g *Generator) Generate(biz Biz) (ID, error) {
	n, ok := g.nodes.Load(biz)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownBiz, biz)
	}
	return ID(n.Generate()), nil
}

type ID int64

func (id ID) Biz() Biz {
	return Biz(snowflake.ID(id).Node() >> 5)
}

func (id ID) Int64() int64 {
	return int64(id)
}
