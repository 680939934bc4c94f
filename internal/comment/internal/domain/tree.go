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

package domain

import "sort"

// BuildForest 把同一个反馈下的扁平评论组装成树。
// 父评论不在输入里的评论当作根评论处理，不会被丢弃。
// 根评论和每一层的回复都按 (Ctime, ID) 升序排列。
// 组装过程不使用递归，层级再深也不会爆栈。
func BuildForest(comments []Comment) []Comment {
	if len(comments) == 0 {
		return []Comment{}
	}
	nodes := make([]Comment, 0, len(comments))
	index := make(map[int64]int, len(comments))
	for _, c := range comments {
		if _, ok := index[c.ID]; ok {
			continue
		}
		c.Replies = nil
		index[c.ID] = len(nodes)
		nodes = append(nodes, c)
	}

	children := make(map[int][]int, len(nodes))
	roots := make([]int, 0, len(nodes))
	for i, c := range nodes {
		p, ok := index[c.ParentID]
		if c.IsTopLevel() || !ok || p == i {
			roots = append(roots, i)
			continue
		}
		children[p] = append(children[p], i)
	}
	less := func(ids []int) func(i, j int) bool {
		return func(i, j int) bool {
			a, b := nodes[ids[i]], nodes[ids[j]]
			if a.Ctime != b.Ctime {
				return a.Ctime < b.Ctime
			}
			return a.ID < b.ID
		}
	}
	for _, ids := range children {
		sort.Slice(ids, less(ids))
	}

	// 广度优先确定每个节点实际挂在哪个父节点下面
	visited := make([]bool, len(nodes))
	order := make([]int, 0, len(nodes))
	attached := make(map[int][]int, len(children))
	bfs := func(root int) {
		visited[root] = true
		queue := []int{root}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			order = append(order, cur)
			for _, child := range children[cur] {
				if visited[child] {
					continue
				}
				visited[child] = true
				attached[cur] = append(attached[cur], child)
				queue = append(queue, child)
			}
		}
	}
	for _, r := range roots {
		bfs(r)
	}
	// 父子关系成环的评论没有根可以到达，把输入里靠前的一条提升为根
	for i := range nodes {
		if !visited[i] {
			roots = append(roots, i)
			bfs(i)
		}
	}
	sort.Slice(roots, less(roots))

	// 逆序物化，保证复制子节点的时候它的回复已经组装完毕
	for k := len(order) - 1; k >= 0; k-- {
		cur := order[k]
		kids := attached[cur]
		if len(kids) == 0 {
			continue
		}
		replies := make([]Comment, 0, len(kids))
		for _, child := range kids {
			replies = append(replies, nodes[child])
		}
		nodes[cur].Replies = replies
	}
	forest := make([]Comment, 0, len(roots))
	for _, r := range roots {
		forest = append(forest, nodes[r])
	}
	return forest
}

// Flatten 按先序遍历把评论树展开，展开后的评论不再带 Replies
func Flatten(forest []Comment) []Comment {
	res := make([]Comment, 0, len(forest))
	stack := make([]Comment, 0, len(forest))
	for i := len(forest) - 1; i >= 0; i-- {
		stack = append(stack, forest[i])
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i := len(cur.Replies) - 1; i >= 0; i-- {
			stack = append(stack, cur.Replies[i])
		}
		cur.Replies = nil
		res = append(res, cur)
	}
	return res
}
