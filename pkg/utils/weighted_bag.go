package utils

import (
	"fmt"
	"math/rand"
)

// weightedEntry 带累积权重的条目
type weightedEntry[T any] struct {
	item              T
	accumulatedWeight float64
}

// WeightedRandomBag 按权重随机抽取条目
//
// 每个条目被抽中的概率 = 自身权重 / 总权重，与添加顺序无关。
// 权重为 0 的条目允许添加，但永远不会被抽中。
type WeightedRandomBag[T any] struct {
	entries     []weightedEntry[T]
	totalWeight float64
	rng         *rand.Rand
}

// NewWeightedRandomBag 创建权重随机袋
// 参数:
//   - rng: 随机数源，传 nil 时使用全局随机源
func NewWeightedRandomBag[T any](rng *rand.Rand) *WeightedRandomBag[T] {
	return &WeightedRandomBag[T]{rng: rng}
}

// AddEntry 追加一个条目，负权重按 0 处理
func (b *WeightedRandomBag[T]) AddEntry(item T, weight float64) {
	if weight < 0 {
		weight = 0
	}
	b.totalWeight += weight
	b.entries = append(b.entries, weightedEntry[T]{item: item, accumulatedWeight: b.totalWeight})
}

// Len 返回条目数量
func (b *WeightedRandomBag[T]) Len() int {
	return len(b.entries)
}

// TotalWeight 返回总权重
func (b *WeightedRandomBag[T]) TotalWeight() float64 {
	return b.totalWeight
}

// GetRandom 按权重抽取一个条目
//
// 调用方必须保证袋中至少有一个正权重条目，否则直接 panic。
func (b *WeightedRandomBag[T]) GetRandom() T {
	if len(b.entries) == 0 {
		panic("WeightedRandomBag: GetRandom called on empty bag")
	}
	if b.totalWeight <= 0 {
		panic(fmt.Sprintf("WeightedRandomBag: GetRandom called with zero total weight (%d entries)", len(b.entries)))
	}

	r := b.float64() * b.totalWeight
	for _, entry := range b.entries {
		if r < entry.accumulatedWeight {
			return entry.item
		}
	}

	// 浮点误差兜底：返回最后一个正权重条目
	for i := len(b.entries) - 1; i >= 0; i-- {
		prev := 0.0
		if i > 0 {
			prev = b.entries[i-1].accumulatedWeight
		}
		if b.entries[i].accumulatedWeight > prev {
			return b.entries[i].item
		}
	}
	return b.entries[len(b.entries)-1].item
}

func (b *WeightedRandomBag[T]) float64() float64 {
	if b.rng == nil {
		return rand.Float64()
	}
	return b.rng.Float64()
}
