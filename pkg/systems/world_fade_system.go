package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/resourcerun/pkg/config"
	"github.com/decker502/resourcerun/pkg/types"
	"github.com/decker502/resourcerun/pkg/world"
)

// FadeState 世界消退状态
type FadeState int

const (
	FadeIdle   FadeState = iota // 未消退
	FadeFading                  // 正在消退
)

func (s FadeState) String() string {
	if s == FadeFading {
		return "fading"
	}
	return "idle"
}

// ObjectDestroyer 按格子销毁世界物体（由 WorldRegistry 实现）
type ObjectDestroyer interface {
	DestroyAt(x, y int) bool
}

// SeasonSource 提供当前季节（由 world.Generator 实现）
type SeasonSource interface {
	Season() *config.SeasonConfig
}

// WorldFadeSystem 世界消退系统
//
// 一层一层地删除地面最外圈的瓦片：每层开始时计算现存瓦片的包围盒和外圈，
// 之后每隔 delay 秒随机删除外圈中的一个格子（瓦片和其上的物体），
// 并重新计算四个邻居的瓦片外观。一圈删完后边界向内收缩一格，进入下一层。
// 没有瓦片可删时自动停止。
//
// 状态机：Idle --StartFade--> Fading --(无瓦片 / StopFade)--> Idle
type WorldFadeSystem struct {
	tiles   world.TileStore
	objects ObjectDestroyer
	borders *world.BorderColliders
	seasons SeasonSource
	rng     *rand.Rand

	delay      float64
	startDelay float64

	state       FadeState
	ring        []types.GridPosition
	inLayer     bool
	accumulator float64
	layer       int
	removed     int

	// OnTileRemoved 每删除一个格子时调用
	OnTileRemoved func(pos types.GridPosition)
	// OnLayerComplete 一圈删完、边界收缩后调用，参数为已完成的层数
	OnLayerComplete func(layer int)
	// OnExhausted 没有瓦片可删、消退自动停止时调用
	OnExhausted func()
}

// NewWorldFadeSystem 创建世界消退系统
// 参数:
//   - tiles: 地面瓦片
//   - objects: 世界物体注册表
//   - borders: 四面边界，每层结束时收缩
//   - seasons: 当前季节来源，用于取得瓦片集
//   - cfg: 世界配置（FadeDelay、FadeStartDelay）
//   - rng: 随机数源，nil 时使用随机种子
func NewWorldFadeSystem(tiles world.TileStore, objects ObjectDestroyer, borders *world.BorderColliders, seasons SeasonSource, cfg config.WorldConfig, rng *rand.Rand) *WorldFadeSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &WorldFadeSystem{
		tiles:      tiles,
		objects:    objects,
		borders:    borders,
		seasons:    seasons,
		rng:        rng,
		delay:      cfg.FadeDelay,
		startDelay: cfg.FadeStartDelay,
	}
}

// State 返回当前状态
func (s *WorldFadeSystem) State() FadeState { return s.state }

// IsFading 检查是否正在消退
func (s *WorldFadeSystem) IsFading() bool { return s.state == FadeFading }

// Layer 返回已完成的层数
func (s *WorldFadeSystem) Layer() int { return s.layer }

// Removed 返回本次消退已删除的格子数
func (s *WorldFadeSystem) Removed() int { return s.removed }

// RingRemaining 返回当前层外圈剩余的格子数
func (s *WorldFadeSystem) RingRemaining() int { return len(s.ring) }

// StartFade 开始消退
// 已在消退时什么也不做；停止后可以再次开始，从现存瓦片重新计算外圈
func (s *WorldFadeSystem) StartFade() {
	if s.state == FadeFading {
		return
	}
	s.state = FadeFading
	s.ring = s.ring[:0]
	s.inLayer = false
	s.accumulator = -s.startDelay
	s.layer = 0
	s.removed = 0
	log.Printf("[WorldFade] Fade started (delay %.2fs, start delay %.2fs)", s.delay, s.startDelay)
}

// StopFade 停止消退
// 当前层尚未删除的外圈被丢弃，已删除的格子不会恢复
func (s *WorldFadeSystem) StopFade() {
	if s.state != FadeFading {
		return
	}
	s.state = FadeIdle
	s.ring = s.ring[:0]
	s.inLayer = false
	log.Printf("[WorldFade] Fade stopped after %d layers (%d tiles)", s.layer, s.removed)
}

// Update 推进消退
// deltaTime 跨越多个间隔时，一次更新会删除多个格子
func (s *WorldFadeSystem) Update(deltaTime float64) {
	if s.state != FadeFading {
		return
	}

	s.accumulator += deltaTime

	for s.state == FadeFading {
		if !s.inLayer && !s.beginLayer() {
			s.state = FadeIdle
			log.Printf("[WorldFade] World exhausted after %d layers (%d tiles)", s.layer, s.removed)
			if s.OnExhausted != nil {
				s.OnExhausted()
			}
			return
		}

		if s.accumulator < s.delay {
			return
		}
		s.accumulator -= s.delay

		s.removeRandom()

		if len(s.ring) == 0 {
			s.completeLayer()
		}
	}
}

// beginLayer 计算新一层的外圈，没有瓦片时返回 false
// 外圈只保留仍有瓦片的格子
func (s *WorldFadeSystem) beginLayer() bool {
	bounds := world.ComputeBoundaries(s.tiles)
	if bounds.Empty() {
		return false
	}

	s.ring = s.ring[:0]
	for _, pos := range world.EdgeRing(bounds) {
		if s.tiles.GetTile(pos.X, pos.Y) != "" {
			s.ring = append(s.ring, pos)
		}
	}
	if len(s.ring) == 0 {
		return false
	}

	s.inLayer = true
	return true
}

// removeRandom 从外圈中随机取出一个格子并删除
func (s *WorldFadeSystem) removeRandom() {
	i := s.rng.Intn(len(s.ring))
	pos := s.ring[i]
	last := len(s.ring) - 1
	s.ring[i] = s.ring[last]
	s.ring = s.ring[:last]

	s.tiles.SetTile(pos.X, pos.Y, "")
	s.objects.DestroyAt(pos.X, pos.Y)
	world.RecomputeNeighbors(s.tiles, s.seasons.Season().Tiles, pos.X, pos.Y)
	s.removed++

	if s.OnTileRemoved != nil {
		s.OnTileRemoved(pos)
	}
}

// completeLayer 一圈删完：收缩边界，进入下一层
func (s *WorldFadeSystem) completeLayer() {
	s.inLayer = false
	s.borders.Shrink()
	s.layer++
	log.Printf("[WorldFade] Layer %d complete", s.layer)
	if s.OnLayerComplete != nil {
		s.OnLayerComplete(s.layer)
	}
}
