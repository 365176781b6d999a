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
)

// Biz 区分不同业务的 ID 空间，编码在 snowflake 的 node 位里面
type Biz uint

const (
	BizPost Biz = iota
	BizApplication
	bizCount
)

const maxNode uint = 31

var (
	ErrExceedNode = errors.New("node超出限制")
	ErrUnknownBiz = errors.New("未知的业务")
)

type IDGenerator interface {
	Generate(biz Biz) (int64, error)
}

// Generator node 位的高五位是 biz，低五位是机器 ID
type Generator struct {
	nodes [bizCount]*snowflake.Node
}

func NewGenerator(nodeID uint) (*Generator, error) {
	if nodeID > maxNode {
		return nil, fmt.Errorf("%w: %d", ErrExceedNode, nodeID)
	}
	g := &Generator{}
	for biz := Biz(0); biz < bizCount; biz++ {
		n, err := snowflake.NewNode(int64(uint(biz)<<5 | nodeID))
		if err != nil {
			return nil, err
		}
		g.nodes[biz] = n
	}
	return g, nil
}

func (g *Generator) Generate(biz Biz) (int64, error) {
	if biz >= bizCount {
		return 0, fmt.Errorf("%w: %d", ErrUnknownBiz, biz)
	}
	return g.nodes[biz].Generate().Int64(), nil
}

// BizOf 从 ID 中还原业务
func BizOf(id int64) Biz {
	return Biz(uint(snowflake.ID(id).Node()) >> 5)
}
