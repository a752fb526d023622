// Copyright 2025 go-coremark Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package list implements the linked-list workload over an index-addressed
// arena.
//
// Nodes and payloads live in two parallel pools sized once from the block
// size. A node holds the index of its successor and the index of its
// payload; NodeID values replace pointers and Nil marks the end of a chain.
// Nothing is ever freed: nodes are relinked, and payload slots are swapped
// between nodes by Remove and UndoRemove.
//
// # Algorithm
//
// MergeSort is an iterative bottom-up mergesort over the chain. Each pass
// splits the list into runs of 1, 2, 4, ... nodes and merges adjacent runs
// by relinking, without any auxiliary buffer. The comparator is injected
// and may modify the payloads it compares.
//
// # Example Usage
//
//	a, head, err := list.New(666, seed)
//	hit := a.Find(head, list.Payload{Idx: 42})
//	head = a.Reverse(head)
//	head = a.MergeSort(head, list.ByIndex)
package list
